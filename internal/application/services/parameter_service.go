package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"wada-stylist/internal/application/usecases"
	"wada-stylist/internal/domain/valueobjects"
)

// MaxBodySize matches the upload limit plus room for the base64 and JSON overhead.
const MaxBodySize = valueobjects.MaxImageSize*4/3 + 64*1024

const msgInvalidBody = "Invalid request body."

type ParameterService struct{}

func NewParameterService() *ParameterService {
	return &ParameterService{}
}

// imageBody is the JSON upload shape {image, mimeType}.
type imageBody struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
}

type generateBody struct {
	imageBody
	ClothesToKeep []string        `json:"clothesToKeep"`
	Combination   json.RawMessage `json:"combination"`
	Style         *string         `json:"style"`
}

// ParseImage reads the upload either as JSON {image, mimeType} or as the multipart field "image".
func (s *ParameterService) ParseImage(r *http.Request) (*valueobjects.ImageData, error) {
	if isMultipart(r) {
		return s.parseMultipartImage(r)
	}

	var body imageBody
	if err := s.DecodeJSON(r, &body); err != nil {
		return nil, err
	}
	return imageFromBody(body, "Please upload an image first.")
}

// ParseGenerate reads the optional generate overrides. Fields left out stay nil.
func (s *ParameterService) ParseGenerate(r *http.Request) (*usecases.GenerateInput, error) {
	if isMultipart(r) {
		return s.parseMultipartGenerate(r)
	}

	var body generateBody
	if err := s.DecodeJSON(r, &body); err != nil {
		return nil, err
	}

	input := &usecases.GenerateInput{
		ClothesToKeep: body.ClothesToKeep,
		Style:         body.Style,
	}

	combination, err := parseCombination(body.Combination)
	if err != nil {
		return nil, err
	}
	input.Combination = combination

	if body.Image != "" {
		if input.Image, err = valueobjects.NewImageDataFromBase64(body.Image, body.MimeType); err != nil {
			return nil, err
		}
	}

	return input, nil
}

// DecodeJSON decodes the body into dst. An empty body leaves dst untouched.
func (s *ParameterService) DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case isTooLarge(err):
		return oversized(err)
	default:
		return valueobjects.NewFailure(valueobjects.FailureValidation, "malformed JSON body", err).
			WithUserMessage(msgInvalidBody)
	}
}

func (s *ParameterService) parseMultipartImage(r *http.Request) (*valueobjects.ImageData, error) {
	if err := r.ParseMultipartForm(MaxBodySize); err != nil {
		return nil, multipartFailure(err)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, valueobjects.NewValidationFailure("Please upload an image first.")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			return nil, oversized(err)
		}
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	return valueobjects.NewImageData(data, mimeType)
}

func (s *ParameterService) parseMultipartGenerate(r *http.Request) (*usecases.GenerateInput, error) {
	if err := r.ParseMultipartForm(MaxBodySize); err != nil {
		return nil, multipartFailure(err)
	}

	input := &usecases.GenerateInput{}
	if values, ok := r.MultipartForm.Value["clothesToKeep"]; ok {
		input.ClothesToKeep = splitList(values)
	}
	if style := r.FormValue("style"); style != "" {
		input.Style = &style
	}
	if value := r.FormValue("combination"); value != "" {
		combination, err := parseCombination(json.RawMessage(value))
		if err != nil {
			return nil, err
		}
		input.Combination = combination
	}

	if _, _, err := r.FormFile("image"); err == nil {
		image, err := s.parseMultipartImage(r)
		if err != nil {
			return nil, err
		}
		input.Image = image
	}

	return input, nil
}

// parseCombination accepts a bare index or a {"index": n, ...} object. null means "not given".
func parseCombination(raw json.RawMessage) (*int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var index int
	if err := json.Unmarshal(raw, &index); err == nil {
		return &index, nil
	}

	var unquoted string
	if err := json.Unmarshal(raw, &unquoted); err == nil {
		if n, err := strconv.Atoi(unquoted); err == nil {
			return &n, nil
		}
	}

	var object struct {
		Index *int `json:"index"`
	}
	if err := json.Unmarshal(raw, &object); err == nil && object.Index != nil {
		return object.Index, nil
	}

	return nil, valueobjects.NewValidationFailure("Invalid combination.")
}

func imageFromBody(body imageBody, missing string) (*valueobjects.ImageData, error) {
	if body.Image == "" {
		return nil, valueobjects.NewValidationFailure(missing)
	}
	return valueobjects.NewImageDataFromBase64(body.Image, body.MimeType)
}

// splitList accepts repeated fields as well as a single comma separated one.
func splitList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func oversized(err error) error {
	return valueobjects.NewFailure(valueobjects.FailureOversized, "request body too large", err)
}

func multipartFailure(err error) error {
	if isTooLarge(err) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return oversized(err)
	}
	return valueobjects.NewFailure(valueobjects.FailureValidation, "malformed multipart body", err).
		WithUserMessage(msgInvalidBody)
}
