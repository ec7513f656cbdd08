package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputBindsTextForm(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *string
	}{
		{"string", `{"v":"Widget"}`, strPtr("Widget")},
		{"escaped string", `{"v":"a\"b"}`, strPtr(`a"b`)},
		{"integer", `{"v":42}`, strPtr("42")},
		{"decimal keeps its digits", `{"v":9.90}`, strPtr("9.90")},
		{"bool", `{"v":true}`, strPtr("true")},
		{"object", `{"v":{ "a": 1 }}`, strPtr(`{"a":1}`)},
		{"null", `{"v":null}`, nil},
		{"missing", `{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				V Input `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.want, body.V.Text())
		})
	}
}

func TestNewInput(t *testing.T) {
	assert.Equal(t, "cheap", *NewInput("cheap").Text())
	assert.Nil(t, Input{}.Text())
}

func strPtr(s string) *string { return &s }
