package domain

import "fmt"

// ResourceType enumerates the kinds of catalog entries.
type ResourceType string

const (
	TypeBook  ResourceType = "book"
	TypeMovie ResourceType = "movie"
	TypeMusic ResourceType = "music"
)

// ParseResourceType converts a raw string into a ResourceType.
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case TypeBook, TypeMovie, TypeMusic:
		return ResourceType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidResourceType, s)
}

// Resource is a catalog entry (book, film or music record) with its
// descriptive metadata. Publication never exceeds the current year at
// write time; the validators enforce that before any mutation.
type Resource struct {
	ID          string       `json:"id"`
	Type        ResourceType `json:"type"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Author      string       `json:"author"`
	Publication int          `json:"publication"`
}
