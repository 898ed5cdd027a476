// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

package xrystore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/qri-io/jsonschema"
	"github.com/tidwall/gjson"
)

// artifactSchemas are the json schemas the artifact elements are validated
// against on insert.
var artifactSchemas = map[string]string{
	"message": `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title": "message",
		"type": "object",
		"required": ["type"],
		"properties": {
			"id": {"type": "string"},
			"type": {"const": "message"},
			"direction": {"type": "string", "enum": ["incoming", "outgoing"]},
			"sender": {"type": "string"},
			"recipients": {"type": "array", "items": {"type": "string"}},
			"date_time": {"type": "integer"},
			"read_status": {"type": "string", "enum": ["read", "unread"]},
			"subject": {"type": "string"},
			"text": {"type": "string"},
			"thread_id": {"type": "string"},
			"attributes": {"type": "object"}
		}
	}`,
	"calllog": `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title": "calllog",
		"type": "object",
		"required": ["type"],
		"properties": {
			"id": {"type": "string"},
			"type": {"const": "calllog"},
			"direction": {"type": "string", "enum": ["incoming", "outgoing"]},
			"caller": {"type": "string"},
			"callees": {"type": "array", "items": {"type": "string"}},
			"start_time": {"type": "integer"},
			"end_time": {"type": "integer"},
			"attributes": {"type": "object"}
		}
	}`,
	"contact": `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title": "contact",
		"type": "object",
		"required": ["type"],
		"properties": {
			"id": {"type": "string"},
			"type": {"const": "contact"},
			"name": {"type": "string"},
			"phone": {"type": "string"},
			"home_phone": {"type": "string"},
			"mobile_phone": {"type": "string"},
			"email": {"type": "string"},
			"attributes": {"type": "object"}
		}
	}`,
	"web-bookmark": `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title": "web-bookmark",
		"type": "object",
		"required": ["type", "url"],
		"properties": {
			"id": {"type": "string"},
			"type": {"const": "web-bookmark"},
			"url": {"type": "string"},
			"title": {"type": "string"},
			"creation_time": {"type": "integer"},
			"application": {"type": "string"},
			"attributes": {"type": "object"}
		}
	}`,
}

func (store *Store) setupSchemas() error {
	for name, content := range artifactSchemas {
		schema := &jsonschema.Schema{}
		if err := json.Unmarshal([]byte(content), schema); err != nil {
			return errors.Wrapf(err, "unmarshal schema %s failed", name)
		}
		store.schemas.store(name, schema)
	}
	return nil
}

// validateElementSchema validates an element against the schema registered
// for its type. Elements of unknown types pass.
func (store *Store) validateElementSchema(element JSONElement) (flaws []string, err error) {
	elementType := gjson.GetBytes(element, discriminator)
	if !elementType.Exists() {
		return []string{"element needs to have a type"}, nil
	}

	schema, ok := store.schemas.load(elementType.String())
	if !ok {
		return nil, nil
	}

	keyErrors, err := schema.ValidateBytes(context.Background(), element)
	if err != nil {
		return nil, err
	}
	for _, keyError := range keyErrors {
		flaws = append(flaws, fmt.Sprintf("failed to validate element: %s", keyError.Error()))
	}
	return flaws, nil
}

// Validate checks all stored elements against the artifact schemas.
func (store *Store) Validate() (flaws []string, err error) {
	flaws = []string{}
	elements, err := store.All()
	if err != nil {
		return nil, err
	}

	for _, element := range elements {
		validationErrors, err := store.validateElementSchema(element)
		if err != nil {
			return nil, err
		}
		flaws = append(flaws, validationErrors...)
	}
	return flaws, nil
}
