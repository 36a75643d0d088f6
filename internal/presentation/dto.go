package presentation

import (
	"github.com/zjrosen/codebrowser/internal/keys"
	"github.com/zjrosen/codebrowser/internal/keyseq"
	"github.com/zjrosen/codebrowser/internal/langmap"
)

// LanguageDTO represents one extension mapping for presentation
type LanguageDTO struct {
	Extension string `json:"extension"`
	Language  string `json:"language"`
}

// BindingDTO represents a key binding for presentation
type BindingDTO struct {
	Keys      string `json:"keys"`
	Operation string `json:"operation"`
	Kind      string `json:"kind"` // chord, key, pair or native
}

// FromLanguageEntries converts langmap entries to DTOs. Disabled entries
// (empty language) are kept so users can see what they turned off.
func FromLanguageEntries(entries []langmap.Entry) []LanguageDTO {
	dtos := make([]LanguageDTO, len(entries))
	for i, e := range entries {
		dtos[i] = LanguageDTO{Extension: e.Extension, Language: e.Language}
	}
	return dtos
}

// FromBindings converts dispatcher bindings and the editor's native
// operation bindings to DTOs. Dispatcher bindings come first since they are
// consulted first.
func FromBindings(bindings []keyseq.Binding, native []keys.OperationBinding) []BindingDTO {
	dtos := make([]BindingDTO, 0, len(bindings)+len(native))
	for _, b := range bindings {
		dtos = append(dtos, BindingDTO{
			Keys:      displayKeys(b.Keys),
			Operation: b.OperationID,
			Kind:      b.Kind.String(),
		})
	}
	for _, ob := range native {
		dtos = append(dtos, BindingDTO{
			Keys:      ob.Binding.Help().Key,
			Operation: ob.OperationID,
			Kind:      "native",
		})
	}
	return dtos
}
