// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"github.com/olegiv/company-site/internal/util"
)

// Field length limits.
const (
	MaxPostTitleLen      = 200
	MaxPostSlugLen       = 220
	MaxServiceNameLen    = 150
	MaxContactNameLen    = 120
	MaxContactSubjectLen = 200
)

const msgRequired = "This field is required."

func checkRequired(ve *ValidationError, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		ve.add(field, msgRequired)
		return false
	}
	return true
}

func checkMaxLen(ve *ValidationError, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		ve.add(field, fmt.Sprintf("Must be at most %d characters.", limit))
	}
}

func checkEmail(ve *ValidationError, field, value string) {
	if !govalidator.IsEmail(value) {
		ve.add(field, "Invalid email address.")
	}
}

// PostForm is the raw post editor input.
type PostForm struct {
	Title     string
	Slug      string
	Body      string
	Published bool
}

// PostInput is a validated post.
type PostInput struct {
	Title     string
	Slug      string
	Body      string
	Published bool
}

// Validate checks the form and returns the normalized input. Slugs are kept
// byte-for-byte; when missing, the error message suggests one from the title.
func (f PostForm) Validate() (PostInput, error) {
	in := PostInput{
		Title:     strings.TrimSpace(f.Title),
		Slug:      f.Slug,
		Body:      f.Body,
		Published: f.Published,
	}

	var ve ValidationError
	if checkRequired(&ve, "title", in.Title) {
		checkMaxLen(&ve, "title", in.Title, MaxPostTitleLen)
	}
	if strings.TrimSpace(in.Slug) == "" {
		msg := msgRequired
		if suggestion := util.Slugify(in.Title); suggestion != "" {
			msg = fmt.Sprintf("This field is required. Try %q.", suggestion)
		}
		ve.add("slug", msg)
	} else {
		checkMaxLen(&ve, "slug", in.Slug, MaxPostSlugLen)
	}
	checkRequired(&ve, "body", in.Body)

	return in, ve.err()
}

// ServiceForm is the raw service editor input. Price is the submitted text.
type ServiceForm struct {
	Name        string
	Description string
	Price       string
}

// ServiceInput is a validated catalog entry. A nil Price means "on request".
type ServiceInput struct {
	Name        string
	Description string
	Price       *int64
}

// Validate checks the form and parses the optional price.
func (f ServiceForm) Validate() (ServiceInput, error) {
	in := ServiceInput{
		Name:        strings.TrimSpace(f.Name),
		Description: f.Description,
	}

	var ve ValidationError
	if checkRequired(&ve, "name", in.Name) {
		checkMaxLen(&ve, "name", in.Name, MaxServiceNameLen)
	}
	checkRequired(&ve, "description", in.Description)

	if raw := strings.TrimSpace(f.Price); raw != "" {
		price, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil:
			ve.add("price", "Price must be a whole number.")
		case price < 0:
			ve.add("price", "Price must be zero or more.")
		default:
			in.Price = &price
		}
	}

	return in, ve.err()
}

// ContactForm is the raw public contact form input.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactInput is a validated contact message.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks the form.
func (f ContactForm) Validate() (ContactInput, error) {
	in := ContactInput{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: f.Message,
	}

	var ve ValidationError
	if checkRequired(&ve, "name", in.Name) {
		checkMaxLen(&ve, "name", in.Name, MaxContactNameLen)
	}
	if checkRequired(&ve, "email", in.Email) {
		checkEmail(&ve, "email", in.Email)
	}
	checkMaxLen(&ve, "subject", in.Subject, MaxContactSubjectLen)
	checkRequired(&ve, "message", in.Message)

	return in, ve.err()
}

// LoginForm is the raw admin login input.
type LoginForm struct {
	Email    string
	Password string
}

// Credentials are validated login input with the email lowercased.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks the form. The password is never trimmed.
func (f LoginForm) Validate() (Credentials, error) {
	c := Credentials{
		Email:    NormalizeEmail(f.Email),
		Password: f.Password,
	}

	var ve ValidationError
	if checkRequired(&ve, "email", c.Email) {
		checkEmail(&ve, "email", c.Email)
	}
	if c.Password == "" {
		ve.add("password", msgRequired)
	}

	return c, ve.err()
}

// NormalizeEmail trims and lowercases an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
