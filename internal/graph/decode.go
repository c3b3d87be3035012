package graph

import (
	"strconv"
)

// decoder decodes the cells of one response using the catalogs fetched just
// before row decoding started.
type decoder struct {
	catalogs Catalogs
}

// parseHeader extracts the ordered column aliases from the header section.
// The per-column type tags are advisory hints only; the authoritative kind of
// every value is the tag carried by the cell itself at decode time.
func parseHeader(raw interface{}) ([]string, error) {
	columns, ok := raw.([]interface{})
	if !ok {
		return nil, decodeErrorf(TypeUnknown, "header section is %T, want array", raw)
	}
	aliases := make([]string, 0, len(columns))
	for i, column := range columns {
		pair, ok := column.([]interface{})
		if !ok || len(pair) < 2 {
			return nil, decodeErrorf(TypeUnknown, "header column %d is not a [type, alias] pair", i)
		}
		alias, ok := pair[1].(string)
		if !ok {
			return nil, decodeErrorf(TypeUnknown, "header column %d alias is %T, want string", i, pair[1])
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

// decodeCell decodes one [typeTag, value] pair. alias is the column binding
// name for top-level cells and empty for values nested inside arrays.
func (d *decoder) decodeCell(cell interface{}, alias string) (interface{}, error) {
	pair, ok := cell.([]interface{})
	if !ok || len(pair) < 2 {
		return nil, decodeErrorf(TypeUnknown, "cell is %T, want [type, value] pair", cell)
	}
	return d.decodeValue(asValueType(pair[0]), pair[1], alias)
}

// decodeValue dispatches on the value tag. Every supported kind either
// decodes fully or fails with a DecodeError; kinds the client does not
// handle decode to an UnsupportedValue instead of failing, so a single
// unsupported column never poisons the whole result.
func (d *decoder) decodeValue(tag ValueType, raw interface{}, alias string) (interface{}, error) {
	switch tag {
	case TypeNull:
		return nil, nil
	case TypeString, TypeInteger:
		return raw, nil
	case TypeBoolean:
		text, _ := raw.(string)
		return text == "true", nil
	case TypeDouble:
		text, ok := raw.(string)
		if !ok {
			return nil, decodeErrorf(TypeDouble, "value is %T, want string", raw)
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, decodeErrorf(TypeDouble, "parsing %q: %v", text, err)
		}
		return f, nil
	case TypeArray:
		elements, ok := raw.([]interface{})
		if !ok {
			return nil, decodeErrorf(TypeArray, "value is %T, want array", raw)
		}
		decoded := make([]interface{}, len(elements))
		for i, element := range elements {
			value, err := d.decodeCell(element, "")
			if err != nil {
				return nil, err
			}
			decoded[i] = value
		}
		return decoded, nil
	case TypeNode:
		return d.decodeNode(raw, alias)
	case TypeEdge:
		return d.decodeEdge(raw, alias)
	case TypePath, TypeMap, TypePoint:
		return UnsupportedValue{Kind: tag}, nil
	default:
		return UnsupportedValue{Kind: TypeUnknown}, nil
	}
}

// decodeNode decodes [id, [labelIndex...], properties]. A label index absent
// from the catalog resolves to an empty name rather than failing the decode.
func (d *decoder) decodeNode(raw interface{}, alias string) (*Node, error) {
	fields, ok := raw.([]interface{})
	if !ok || len(fields) < 3 {
		return nil, decodeErrorf(TypeNode, "value is %T, want [id, labels, properties]", raw)
	}
	id, ok := asInt64(fields[0])
	if !ok {
		return nil, decodeErrorf(TypeNode, "id is %T, want integer", fields[0])
	}
	labelIndexes, ok := fields[1].([]interface{})
	if !ok {
		return nil, decodeErrorf(TypeNode, "label indexes are %T, want array", fields[1])
	}

	labels := make([]string, len(labelIndexes))
	for i, rawIndex := range labelIndexes {
		index, ok := asInt64(rawIndex)
		if !ok {
			return nil, decodeErrorf(TypeNode, "label index %d is %T, want integer", i, rawIndex)
		}
		labels[i] = d.catalogs.Labels[int(index)]
	}

	properties, err := d.decodeProperties(TypeNode, fields[2])
	if err != nil {
		return nil, err
	}
	return &Node{ID: id, Alias: alias, Labels: labels, Properties: properties}, nil
}

// decodeEdge decodes [id, typeIndex, srcId, destId, properties]. Endpoint
// ids stay unresolved; the protocol does not embed the endpoint nodes.
func (d *decoder) decodeEdge(raw interface{}, alias string) (*Edge, error) {
	fields, ok := raw.([]interface{})
	if !ok || len(fields) < 5 {
		return nil, decodeErrorf(TypeEdge, "value is %T, want [id, type, src, dest, properties]", raw)
	}
	id, ok := asInt64(fields[0])
	if !ok {
		return nil, decodeErrorf(TypeEdge, "id is %T, want integer", fields[0])
	}
	typeIndex, ok := asInt64(fields[1])
	if !ok {
		return nil, decodeErrorf(TypeEdge, "type index is %T, want integer", fields[1])
	}
	sourceID, ok := asInt64(fields[2])
	if !ok {
		return nil, decodeErrorf(TypeEdge, "source id is %T, want integer", fields[2])
	}
	destinationID, ok := asInt64(fields[3])
	if !ok {
		return nil, decodeErrorf(TypeEdge, "destination id is %T, want integer", fields[3])
	}

	properties, err := d.decodeProperties(TypeEdge, fields[4])
	if err != nil {
		return nil, err
	}
	return &Edge{
		ID:            id,
		Alias:         alias,
		Type:          d.catalogs.RelationshipTypes[int(typeIndex)],
		SourceID:      sourceID,
		DestinationID: destinationID,
		Properties:    properties,
	}, nil
}

// decodeProperties decodes a [[keyIndex, typeTag, value], ...] property
// sequence. Entries whose key index is missing from the property-key catalog
// are dropped; an unnamed property has no usable map key and keeping it
// would let unrelated unknown keys collide.
func (d *decoder) decodeProperties(kind ValueType, raw interface{}) (map[string]interface{}, error) {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil, decodeErrorf(kind, "properties are %T, want array", raw)
	}
	properties := make(map[string]interface{}, len(entries))
	for i, rawEntry := range entries {
		entry, ok := rawEntry.([]interface{})
		if !ok || len(entry) < 3 {
			return nil, decodeErrorf(kind, "property %d is not a [key, type, value] triple", i)
		}
		keyIndex, ok := asInt64(entry[0])
		if !ok {
			return nil, decodeErrorf(kind, "property %d key index is %T, want integer", i, entry[0])
		}
		key, known := d.catalogs.PropertyKeys[int(keyIndex)]
		if !known {
			continue
		}
		value, err := d.decodeValue(asValueType(entry[1]), entry[2], "")
		if err != nil {
			return nil, err
		}
		properties[key] = value
	}
	return properties, nil
}

// asValueType converts a raw tag into a ValueType. Unconvertible tags map to
// TypeUnknown, which the decoder turns into an UnsupportedValue.
func asValueType(raw interface{}) ValueType {
	if n, ok := asInt64(raw); ok {
		return ValueType(n)
	}
	return TypeUnknown
}

// asInt64 normalizes the integer shapes the redis client hands back.
func asInt64(raw interface{}) (int64, bool) {
	switch n := raw.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	default:
		return 0, false
	}
}
