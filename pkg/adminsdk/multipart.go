package adminsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// StagedFile is a user-selected file not yet uploaded.
type StagedFile struct {
	Name        string
	ContentType string
	Content     []byte
}

func (f *StagedFile) Size() int64 {
	return int64(len(f.Content))
}

type formField struct {
	name  string
	value string
}

// MultipartPayload builds the multipart body for file-bearing create and
// update requests. Field order is preserved.
type MultipartPayload struct {
	fields    []formField
	fileField string
	file      *StagedFile
}

func NewMultipartPayload() *MultipartPayload {
	return &MultipartPayload{}
}

func (p *MultipartPayload) Set(name, value string) *MultipartPayload {
	p.fields = append(p.fields, formField{name: name, value: value})
	return p
}

// SetOptional omits the field entirely when the value is empty, so the
// server treats it as absent rather than as an empty string.
func (p *MultipartPayload) SetOptional(name, value string) *MultipartPayload {
	if value == "" {
		return p
	}
	return p.Set(name, value)
}

// SetJSON serializes a nested collection into a text field.
func (p *MultipartPayload) SetJSON(name string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	p.Set(name, string(encoded))
	return nil
}

func (p *MultipartPayload) SetFile(field string, file *StagedFile) *MultipartPayload {
	p.fileField = field
	p.file = file
	return p
}

// MarkUpdate adds the override field that turns a multipart POST into an
// update on the server.
func (p *MultipartPayload) MarkUpdate() *MultipartPayload {
	return p.Set("_method", "PUT")
}

func (p *MultipartPayload) Encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range p.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	if p.file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.fileField, p.file.Name))
		contentType := p.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(p.file.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
