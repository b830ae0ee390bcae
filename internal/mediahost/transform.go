package mediahost

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// VideoPadDirective renders videos into a fixed 400x400 box, padding with a
// blurred background instead of cropping.
const VideoPadDirective = "w-400,h-400,cm-pad_resize,bg-blurred"

// overlaySpec is the fixed caption overlay: top-left anchored, white text on
// translucent black, fixed font size. %s is the encoded caption.
const overlaySpec = "l-text,ie-%s,ly-N20,lx-20,fs-100,co-white,bg-000000A0,l-end"

// ErrMalformedURL signals a canonical URL too short for the provider's
// positional transformation contract.
var ErrMalformedURL = errors.New("mediahost: URL too short for transformation")

// The provider addresses media as <scheme>//<host>/<account>/<asset path> and
// accepts a tr:<directive> segment spliced between the account segment and
// the asset path. Slash-splitting that shape yields four prefix segments
// ("https:", "", host, account); they are treated as opaque.
const prefixSegments = 4

// EncodeOverlayText encodes caption text for a provider overlay directive:
// base64 over the raw bytes, then percent-encoding. The escaping covers '/'
// and '+' too, so the token can never introduce extra path segments into
// the spliced URL.
func EncodeOverlayText(text string) string {
	if text == "" {
		return ""
	}
	return url.QueryEscape(base64.StdEncoding.EncodeToString([]byte(text)))
}

// Transform maps a canonical media URL and a display intent to the provider
// transformation URL. A non-empty caption produces a text-overlay directive
// that takes precedence over the intent; with neither, the URL is returned
// unchanged.
func Transform(canonicalURL, displayIntent, caption string) (string, error) {
	directive := displayIntent
	if caption != "" {
		directive = fmt.Sprintf(overlaySpec, EncodeOverlayText(caption))
	}
	if directive == "" {
		return canonicalURL, nil
	}

	parts := strings.Split(canonicalURL, "/")
	if len(parts) <= prefixSegments {
		return "", ErrMalformedURL
	}
	prefix := strings.Join(parts[:prefixSegments], "/")
	assetPath := strings.Join(parts[prefixSegments:], "/")
	return fmt.Sprintf("%s/tr:%s/%s", prefix, directive, assetPath), nil
}
