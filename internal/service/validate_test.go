// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFormValidate(t *testing.T) {
	tests := []struct {
		name       string
		form       PostForm
		wantFields []string
	}{
		{
			name: "valid draft",
			form: PostForm{Title: "Hello", Slug: "hello", Body: "text"},
		},
		{
			name:       "all missing",
			form:       PostForm{},
			wantFields: []string{"title", "slug", "body"},
		},
		{
			name:       "whitespace only",
			form:       PostForm{Title: "  ", Slug: " ", Body: "\n"},
			wantFields: []string{"title", "slug", "body"},
		},
		{
			name:       "title too long",
			form:       PostForm{Title: strings.Repeat("a", MaxPostTitleLen+1), Slug: "s", Body: "b"},
			wantFields: []string{"title"},
		},
		{
			name:       "slug too long",
			form:       PostForm{Title: "t", Slug: strings.Repeat("s", MaxPostSlugLen+1), Body: "b"},
			wantFields: []string{"slug"},
		},
		{
			name: "limits are inclusive",
			form: PostForm{Title: strings.Repeat("é", MaxPostTitleLen), Slug: strings.Repeat("s", MaxPostSlugLen), Body: "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			fields := FieldErrors(err)
			require.NotNil(t, fields, "expected a ValidationError, got %v", err)
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
			assert.Len(t, fields, len(tt.wantFields))
		})
	}
}

func TestPostFormValidate_SlugIsOpaque(t *testing.T) {
	in, err := PostForm{Title: " Hello ", Slug: "Hello_World", Body: "b", Published: true}.Validate()
	require.NoError(t, err)

	assert.Equal(t, "Hello", in.Title)
	assert.Equal(t, "Hello_World", in.Slug, "slug must not be folded or filtered")
	assert.True(t, in.Published)
}

func TestPostFormValidate_SuggestsSlug(t *testing.T) {
	_, err := PostForm{Title: "Hello World", Body: "b"}.Validate()
	fields := FieldErrors(err)
	require.NotNil(t, fields)
	assert.Contains(t, fields["slug"], `"hello-world"`)
}

func TestServiceFormValidate_Price(t *testing.T) {
	tests := []struct {
		price     string
		wantPrice *int64
		wantErr   bool
	}{
		{price: "", wantPrice: nil},
		{price: "   ", wantPrice: nil},
		{price: "0", wantPrice: ptr(0)},
		{price: "50000", wantPrice: ptr(50000)},
		{price: " 75000 ", wantPrice: ptr(75000)},
		{price: "-1", wantErr: true},
		{price: "12.50", wantErr: true},
		{price: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			in, err := ServiceForm{Name: "Consulting", Description: "d", Price: tt.price}.Validate()
			if tt.wantErr {
				assert.Contains(t, FieldErrors(err), "price")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, in.Price)
		})
	}
}

func ptr(v int64) *int64 { return &v }

func TestServiceFormValidate_Required(t *testing.T) {
	_, err := ServiceForm{Name: strings.Repeat("n", MaxServiceNameLen+1)}.Validate()
	fields := FieldErrors(err)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "description")
}

func TestContactFormValidate(t *testing.T) {
	valid := ContactForm{Name: "Ann", Email: "ann@example.com", Message: "Hi"}
	in, err := valid.Validate()
	require.NoError(t, err)
	assert.Equal(t, "", in.Subject)

	tests := []struct {
		name  string
		form  ContactForm
		field string
	}{
		{"empty message", ContactForm{Name: "Ann", Email: "ann@example.com"}, "message"},
		{"missing name", ContactForm{Email: "ann@example.com", Message: "Hi"}, "name"},
		{"bad email", ContactForm{Name: "Ann", Email: "not-an-email", Message: "Hi"}, "email"},
		{"missing email", ContactForm{Name: "Ann", Message: "Hi"}, "email"},
		{"long subject", ContactForm{Name: "Ann", Email: "ann@example.com", Subject: strings.Repeat("s", MaxContactSubjectLen+1), Message: "Hi"}, "subject"},
		{"long name", ContactForm{Name: strings.Repeat("n", MaxContactNameLen+1), Email: "ann@example.com", Message: "Hi"}, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.Validate()
			fields := FieldErrors(err)
			require.NotNil(t, fields)
			assert.Contains(t, fields, tt.field)
			assert.Len(t, fields, 1)
		})
	}
}

func TestLoginFormValidate(t *testing.T) {
	c, err := LoginForm{Email: "  Admin@Example.COM ", Password: " secret "}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", c.Email)
	assert.Equal(t, " secret ", c.Password, "password must be kept verbatim")

	_, err = LoginForm{Email: "nope"}.Validate()
	fields := FieldErrors(err)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	assert.Equal(t, "validation failed: a: one; b: two", err.Error())
	assert.Nil(t, FieldErrors(ErrConflict))
}
