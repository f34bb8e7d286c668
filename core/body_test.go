package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bodyPart struct {
	Enabled *bool `json:"enabled,omitempty"`
}

func TestBodySetOptional(t *testing.T) {
	var nilString *string
	var nilPart *bodyPart

	b := Body{}.
		Set("features", map[string]interface{}{}).
		SetOptional("text", StringPtr("hello")).
		SetOptional("xpath", nilString).
		SetOptional("html", StringPtr("")).
		SetOptional("clean", BoolPtr(false)).
		SetOptional("limit", Int64Ptr(0)).
		SetOptional("ids", []string{}).
		SetOptional("fields", []string{"title"}).
		SetOptional("part", nilPart).
		SetOptional("options", &bodyPart{}).
		SetOptional("none", nil)

	assert.Equal(t, Body{
		"features": map[string]interface{}{},
		"text":     StringPtr("hello"),
		"clean":    BoolPtr(false),
		"limit":    Int64Ptr(0),
		"fields":   []string{"title"},
		"options":  &bodyPart{},
	}, b)
}
