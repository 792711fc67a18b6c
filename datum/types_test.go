package datum

import "testing"

func TestTypeEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b DataType
		want bool
	}{
		{"same primitive", Int64, Int64, true},
		{"different primitive", Int64, Float64, false},
		{"timestamp same", &TimestampType{Unit: Millisecond, TimeZone: "UTC"}, &TimestampType{Unit: Millisecond, TimeZone: "UTC"}, true},
		{"timestamp unit", &TimestampType{Unit: Millisecond}, &TimestampType{Unit: Second}, false},
		{"timestamp zone", &TimestampType{Unit: Second, TimeZone: "UTC"}, &TimestampType{Unit: Second}, false},
		{"dictionary same", &DictionaryType{IndexType: Int8, Value: String}, &DictionaryType{IndexType: Int8, Value: String}, true},
		{"dictionary index", &DictionaryType{IndexType: Int8, Value: String}, &DictionaryType{IndexType: Int32, Value: String}, false},
		{"dictionary ordered", &DictionaryType{IndexType: Int8, Value: String, Ordered: true}, &DictionaryType{IndexType: Int8, Value: String}, false},
		{"dictionary vs value", &DictionaryType{IndexType: Int8, Value: String}, String, false},
		{"both nil", nil, nil, true},
		{"one nil", Int64, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("TypeEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := TypeEqual(tt.b, tt.a); got != tt.want {
				t.Errorf("TypeEqual(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestValueTypeOf(t *testing.T) {
	dict := &DictionaryType{IndexType: Int16, Value: Float64}

	if got := ValueTypeOf(dict); !got.Equals(Float64) {
		t.Errorf("ValueTypeOf(dictionary) = %s, want double", got)
	}
	if got := ValueTypeOf(Int16); !got.Equals(Int16) {
		t.Errorf("ValueTypeOf(int16) = %s, want int16", got)
	}
}

func TestDataType_String(t *testing.T) {
	tests := []struct {
		typ  DataType
		want string
	}{
		{Int64, "int64"},
		{Float64, "double"},
		{String, "string"},
		{&TimestampType{Unit: Nanosecond}, "timestamp[ns]"},
		{&TimestampType{Unit: Microsecond, TimeZone: "Europe/Paris"}, "timestamp[us, tz=Europe/Paris]"},
		{&DictionaryType{IndexType: Int32, Value: String}, "dictionary<values=string, indices=int32>"},
		{&DictionaryType{IndexType: Int8, Value: Int64, Ordered: true}, "dictionary<values=int64, indices=int8, ordered>"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTypeID_StringUnknown(t *testing.T) {
	if got := TypeID(99).String(); got != "TypeID(99)" {
		t.Errorf("String() = %q, want %q", got, "TypeID(99)")
	}
}
