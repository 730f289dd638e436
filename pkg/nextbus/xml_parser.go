package nextbus

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/util"
	"golang.org/x/net/html/charset"
)

var ErrMalformedDocument = errors.New("malformed feed document")

// ParseXML streams the document from reader into the handler, one token at a time
func ParseXML(reader io.Reader, handler ContentHandler) error {
	d := xml.NewDecoder(util.NewValidUTF8Reader(reader))
	d.CharsetReader = charset.NewReaderLabel

	elementCount := 0

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			// Syntax errors and failed body reads both abort, a partial document is never a result
			return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			elementCount += 1

			if err := handler.StartElement(ty.Name.Local, AttributesFromXML(ty.Attr)); err != nil {
				return err
			}
		case xml.CharData:
			handler.Characters(string(ty))
		case xml.EndElement:
			handler.EndElement(ty.Name.Local)
		default:
		}
	}

	if elementCount == 0 {
		return fmt.Errorf("%w: document has no elements", ErrMalformedDocument)
	}

	log.Debug().Int("elements", elementCount).Msg("Parsed feed document")

	return nil
}
