package client

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// Field is a named text input of a form.
type Field struct {
	Name  string
	Value string
}

// File is a file input of a form. Data is read at submission time only.
type File struct {
	Field    string
	Filename string
	Data     []byte
}

// Form holds the current values of a form, in declaration order.
type Form struct {
	Fields []Field
	Files  []File
}

// Set appends a text field.
func (f *Form) Set(name, value string) {
	f.Fields = append(f.Fields, Field{Name: name, Value: value})
}

// Attach appends a file field.
func (f *Form) Attach(field, filename string, data []byte) {
	f.Files = append(f.Files, File{Field: field, Filename: filename, Data: data})
}

// Value returns the first value of the named text field.
func (f Form) Value(name string) (string, bool) {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd.Value, true
		}
	}
	return "", false
}

// encode builds the multipart payload and returns it with its content type.
func (f Form) encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, fd := range f.Fields {
		if err := w.WriteField(fd.Name, fd.Value); err != nil {
			return nil, "", fmt.Errorf("campo %s: %w", fd.Name, err)
		}
	}
	for _, file := range f.Files {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("arquivo %s: %w", file.Field, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("arquivo %s: %w", file.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}
