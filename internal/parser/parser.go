package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/models"
)

// Parse decodes a single JSON value from the reader into a models.Value.
// It walks the decoder's token stream instead of unmarshalling into a
// map because object member order is observable in the rendered output
// and a map would lose it. Numbers are kept as json.Number.
func Parse(reader io.Reader) (models.Value, error) {
	dec := json.NewDecoder(reader)
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Value{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return models.Value{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			return models.Value{}, errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
		}
		return models.Value{}, errors.NewParsingError("failed to decode JSON", err)
	}

	// A second value after the first one is not allowed.
	if dec.More() {
		return models.Value{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}

	return value, nil
}

// decodeValue reads the next complete JSON value from the token stream.
func decodeValue(dec *json.Decoder) (models.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return models.Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (models.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return models.Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case bool:
		return models.Value{Kind: models.Bool, Bool: t}, nil
	case json.Number:
		return models.Value{Kind: models.Number, Number: t}, nil
	case string:
		return models.Value{Kind: models.String, Str: t}, nil
	case nil:
		return models.Value{Kind: models.Null}, nil
	default:
		return models.Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// decodeObject consumes members up to and including the closing brace.
// The opening brace has already been read by the caller.
func decodeObject(dec *json.Decoder) (models.Value, error) {
	obj := models.Value{Kind: models.Object}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return models.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return models.Value{}, fmt.Errorf("unexpected object key token %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return models.Value{}, err
		}
		obj.Members = append(obj.Members, models.Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return models.Value{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (models.Value, error) {
	arr := models.Value{Kind: models.Array}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return models.Value{}, err
		}
		arr.Items = append(arr.Items, val)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return models.Value{}, err
	}
	return arr, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	// An empty reader surfaces as io.EOF from the decoder, but a
	// whitespace-only string deserves the same specific error.
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
