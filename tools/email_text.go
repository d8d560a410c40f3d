package tools

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"classificador/models"

	"github.com/ledongthuc/pdf"
)

var allowedExtensions = map[string]struct{}{"txt": {}, "pdf": {}}

// Extension devolve a extensão em minúsculas, sem o ponto.
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

func AllowedFile(filename string) bool {
	_, ok := allowedExtensions[Extension(filename)]
	return ok
}

// ReadTxt lê texto UTF-8 descartando bytes inválidos.
func ReadTxt(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), ""), nil
}

// ReadPDF extrai o texto de todas as páginas, uma por linha.
func ReadPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf inválido: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf página %d: %w", i, err)
		}
		pages = append(pages, txt)
	}
	return strings.Join(pages, "\n"), nil
}

// ExtractEmailText usa o arquivo quando a extensão é aceita; caso contrário, o texto colado.
// Devolve também a origem do texto (models.ORIGEM_*).
func ExtractEmailText(file *multipart.FileHeader, pasted string) (string, string, error) {
	if file == nil || file.Filename == "" || !AllowedFile(file.Filename) {
		return pasted, models.ORIGEM_TEXTO, nil
	}

	f, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	switch Extension(file.Filename) {
	case "txt":
		text, err := ReadTxt(f)
		return text, models.ORIGEM_TXT, err
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return "", "", err
		}
		text, err := ReadPDF(data)
		return text, models.ORIGEM_PDF, err
	}
}
