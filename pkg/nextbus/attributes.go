package nextbus

import "encoding/xml"

// Attributes holds the attributes of a single feed element keyed by local name
type Attributes map[string]string

func AttributesFromXML(attrs []xml.Attr) Attributes {
	attributes := make(Attributes, len(attrs))

	for i := 0; i < len(attrs); i++ {
		attributes[attrs[i].Name.Local] = attrs[i].Value
	}

	return attributes
}

func (a Attributes) Get(key string) string {
	return a.GetDefault(key, "")
}

func (a Attributes) GetDefault(key string, defaultValue string) string {
	if value, exists := a[key]; exists {
		return value
	}

	return defaultValue
}

func (a Attributes) Copy() Attributes {
	copied := make(Attributes, len(a))
	for key, value := range a {
		copied[key] = value
	}

	return copied
}
