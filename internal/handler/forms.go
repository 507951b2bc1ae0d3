// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"

	"github.com/olegiv/company-site/internal/service"
	"github.com/olegiv/company-site/internal/store"
)

// formMeta tells an editor template where to post and how to label itself.
type formMeta struct {
	Action string
}

// checkboxChecked reports whether an HTML checkbox was ticked.
func checkboxChecked(r *http.Request, name string) bool {
	switch r.PostFormValue(name) {
	case "y", "on", "true", "1":
		return true
	}
	return false
}

func postFormFromRequest(r *http.Request) service.PostForm {
	return service.PostForm{
		Title:     r.PostFormValue("title"),
		Slug:      r.PostFormValue("slug"),
		Body:      r.PostFormValue("body"),
		Published: checkboxChecked(r, "published"),
	}
}

func postFormFromPost(p store.Post) service.PostForm {
	return service.PostForm{
		Title:     p.Title,
		Slug:      p.Slug,
		Body:      p.Body,
		Published: p.Published,
	}
}

func serviceFormFromRequest(r *http.Request) service.ServiceForm {
	return service.ServiceForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
	}
}

func serviceFormFromService(s store.Service) service.ServiceForm {
	f := service.ServiceForm{
		Name:        s.Name,
		Description: s.Description,
	}
	if s.Price.Valid {
		f.Price = strconv.FormatInt(s.Price.Int64, 10)
	}
	return f
}

func contactFormFromRequest(r *http.Request) service.ContactForm {
	return service.ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}
}
