package content

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var delimiter = []byte("---")

// ParseFrontmatter splits content into a YAML frontmatter block and a body.
// The frontmatter is decoded into meta, which must be a pointer; unknown keys are rejected.
// Content without a leading delimiter is returned unchanged as the body.
func ParseFrontmatter(content []byte, meta any) ([]byte, error) {
	if !bytes.HasPrefix(content, delimiter) {
		return content, nil
	}

	afterFirst := bytes.TrimPrefix(content, delimiter)
	afterFirst = bytes.TrimLeft(afterFirst, "\n\r")
	if len(afterFirst) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	endIdx := bytes.Index(afterFirst, delimiter)
	if endIdx == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	header := afterFirst[:endIdx]
	bodyStart := endIdx + len(delimiter)
	// Skip one newline after closing delimiter (\r\n or \n)
	if bodyStart < len(afterFirst) {
		if afterFirst[bodyStart] == '\r' && bodyStart+1 < len(afterFirst) && afterFirst[bodyStart+1] == '\n' {
			bodyStart += 2
		} else if afterFirst[bodyStart] == '\n' {
			bodyStart++
		}
	}
	body := afterFirst[bodyStart:]

	if len(bytes.TrimSpace(header)) == 0 || meta == nil {
		return body, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(header))
	dec.KnownFields(true)
	if err := dec.Decode(meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	return body, nil
}
