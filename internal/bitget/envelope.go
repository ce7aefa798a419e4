package bitget

import "encoding/json"

// listKeys is the ordered set of wrapper keys a record array may hide under.
// The bills and fill-history endpoints have shipped both bare arrays and
// wrapped objects across API revisions.
var listKeys = []string{"billsList", "fillList", "list"}

// decodeList interprets a data payload as an array of records. The payload
// may be a bare array, an object wrapping an array under one of listKeys,
// or a single object (treated as a one-element list).
func decodeList(data json.RawMessage) ([]Record, error) {
	var arr []Record
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &ParseError{What: "record list", Err: err}
	}

	for _, key := range listKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, &ParseError{What: "record list under " + key, Err: err}
		}
		return arr, nil
	}

	// A lone object: expose it as a one-element list.
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &ParseError{What: "record list", Err: err}
	}
	return []Record{rec}, nil
}

// decodeRecord interprets a data payload as a single record, unwrapping
// one-element arrays (the accounts endpoint answers with both shapes).
func decodeRecord(data json.RawMessage) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err == nil {
		return rec, nil
	}

	var arr []Record
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil, &ParseError{What: "record object", Err: err}
	}
	if len(arr) == 0 {
		return Record{}, nil
	}
	return arr[0], nil
}
