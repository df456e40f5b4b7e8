// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package lambdahttp

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"
)

// textualSubtypes are the application/* media types whose content is sent as plain text.
var textualSubtypes = map[string]bool{
	"json":                  true,
	"xml":                   true,
	"javascript":            true,
	"x-www-form-urlencoded": true,
	"yaml":                  true,
}

// IsBinary decides whether content must be base64 encoded for Lambda.  Content is
// textual when it is valid UTF-8 and the media type, if any, is text/*, a textual
// application/* type (including +json and +xml suffixes), or declares a charset.
func IsBinary(contentType string, content []byte) bool {
	if !utf8.Valid(content) {
		return true
	}

	if len(contentType) == 0 {
		return false
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return true
	}

	if _, ok := params["charset"]; ok {
		return false
	}

	major, minor, _ := strings.Cut(mediaType, "/")
	switch {
	case major == "text":
		return false
	case major != "application":
		return true
	case textualSubtypes[minor]:
		return false
	case strings.HasSuffix(minor, "+json"), strings.HasSuffix(minor, "+xml"):
		return false
	default:
		return true
	}
}

// encodeBody produces the Lambda representation of some content.
func encodeBody(contentType string, content []byte) (string, bool) {
	if IsBinary(contentType, content) {
		return base64.StdEncoding.EncodeToString(content), true
	}

	return string(content), false
}

// decodeBody is the inverse of encodeBody.
func decodeBody(body string, isBase64Encoded bool) ([]byte, error) {
	if !isBase64Encoded {
		return []byte(body), nil
	}

	content, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBody, err)
	}

	return content, nil
}
