// Package licenses exposes the third-party notices bundled into the binaries.
package licenses

import _ "embed"

//go:embed embedded/THIRD_PARTY_NOTICES.md
var noticesText string

func NoticesText() string {
	return noticesText
}
