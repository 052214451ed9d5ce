// Package jsonvalue models a parsed JSON document as a closed tagged value.
//
// Objects keep their members in document order, so a walk over a Value
// visits keys as they were written. A key repeated within one object appears
// once, at its first position, holding its last value. Values are
// produced by Decode (JSON) or DecodeYAML and are not modified afterwards.
//
// Rendering:
//   - String returns scalars in literal form (strings unquoted, numbers as
//     written, true, false, null) and containers as compact JSON.
//   - MarshalJSON and MarshalYAML preserve member order.
package jsonvalue
