package adapter

import (
	"bytes"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/legacy-keeper/models"
)

type formPart struct {
	name     string
	value    string
	file     *models.UploadFile
	fileName string
}

// multipartForm is an ordered multipart body. It keeps values rather than
// readers so the same form can be sent again after a token refresh.
type multipartForm struct {
	parts []formPart
}

func (f *multipartForm) add(name, value string) *multipartForm {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

func (f *multipartForm) addFile(name string, file models.UploadFile) *multipartForm {
	fileName := file.Name
	if fileName == "" {
		fileName = name
	}
	f.parts = append(f.parts, formPart{name: name, file: &file, fileName: fileName})
	return f
}

func (f *multipartForm) len() int {
	return len(f.parts)
}

func (f *multipartForm) apply(r *resty.Request) {
	fields := make([]*resty.MultipartField, 0, len(f.parts))
	for _, p := range f.parts {
		if p.file == nil {
			fields = append(fields, &resty.MultipartField{
				Param:  p.name,
				Reader: strings.NewReader(p.value),
			})
			continue
		}

		contentType := p.file.MimeType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		fields = append(fields, &resty.MultipartField{
			Param:       p.name,
			FileName:    p.fileName,
			ContentType: contentType,
			Reader:      bytes.NewReader(p.file.Content),
		})
	}
	r.SetMultipartFields(fields...)
}
