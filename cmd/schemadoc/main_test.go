package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, write(&buf))

	dec := yaml.NewDecoder(&buf)
	var docs []contract
	for {
		var doc contract
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		docs = append(docs, doc)
	}

	require.Len(t, docs, 4)
	assert.Equal(t, "GET /random-person", docs[0].Endpoint)
	assert.Equal(t, "object", docs[0].Schema.Kind)

	users := docs[3]
	assert.Equal(t, "POST /users", users.Endpoint)
	assert.Equal(t, "request body", users.Role)
	require.Len(t, users.Schema.Fields, 3)
	age := users.Schema.Fields[1]
	assert.Equal(t, "age", age.Name)
	assert.False(t, age.Required)
	assert.Equal(t, 28, age.Default)
	email := users.Schema.Fields[2]
	assert.Equal(t, "email", email.Schema.Format)
	assert.Equal(t, []string{"lowercase"}, email.Schema.Transforms)

	address := docs[2].Schema.Fields[0].Schema.Items
	require.NotNil(t, address)
	postcode := address.Fields[0].Schema.Fields[1].Schema
	assert.Equal(t, "union", postcode.Kind)
	assert.Len(t, postcode.AnyOf, 2)
}
