package jsonvalue

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Member is one key/value entry of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	text    string // number literal or string contents
	items   []Value
	members []Member
}

func Null() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Number keeps the literal as written so rendering does not reformat it.
func Number(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

func String(s string) Value {
	return Value{kind: KindString, text: s}
}

func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Object builds an object. A repeated key keeps the position of its first
// occurrence and the value of its last, like a map-based decoder.
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: collapse(members)}
}

func collapse(members []Member) []Member {
	if members == nil {
		return []Member{}
	}

	seen := make(map[string]int, len(members))
	var out []Member
	for i, member := range members {
		first, repeated := seen[member.Key]
		if !repeated {
			seen[member.Key] = len(seen)
			if out != nil {
				out = append(out, member)
			}
			continue
		}
		if out == nil {
			out = append(make([]Member, 0, len(members)), members[:i]...)
		}
		out[first].Value = member.Value
	}

	if out == nil {
		return members
	}
	return out
}

func (v Value) Kind() Kind {
	return v.kind
}

// IsContainer reports whether v is an object or an array.
func (v Value) IsContainer() bool {
	return v.kind == KindObject || v.kind == KindArray
}

// Bool returns the boolean payload; false for other kinds.
func (v Value) Bool() bool {
	return v.boolean
}

// Text returns the string contents or the number literal.
func (v Value) Text() string {
	return v.text
}

// Items returns array elements in order. Callers must not modify the slice.
func (v Value) Items() []Value {
	return v.items
}

// Members returns object members in document order. Callers must not modify the slice.
func (v Value) Members() []Member {
	return v.members
}

// Get returns the value of the member named key.
func (v Value) Get(key string) (Value, bool) {
	for _, member := range v.members {
		if member.Key == key {
			return member.Value, true
		}
	}
	return Value{}, false
}

// Index returns the array element at i.
func (v Value) Index(i int) (Value, bool) {
	if i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}
