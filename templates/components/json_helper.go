package components

import (
	"encoding/json"
	"html/template"
	"log"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// JSONLD marshals structured data for a <script type="application/ld+json">
// block. encoding/json escapes <, > and & so the payload cannot close the tag.
func JSONLD(v any) template.JS {
	return template.JS(JSON(v))
}
