// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/jetsetilly/gopheradvance/curated"
)

// Sentinal error patterns.
const (
	LoadError     = "romloader: %v"
	UnknownScheme = "romloader: unsupported URL scheme (%s)"
	HashMismatch  = "romloader: unexpected hash value"
	EmptyImage    = "romloader: %s is empty"
)

// FileExtensions is the list of file extensions that are recognised as GBA
// images. Loading a file with any other extension is allowed.
var FileExtensions = [...]string{".GBA", ".AGB", ".BIN", ".MB", ".ROM"}

// Loader is used to specify the ROM image to load into the GBA.
type Loader struct {
	// filename of image to load. may be a http or https URL
	Filename string

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// the file extension is one of the FileExtensions
	Recognised bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	ext := strings.ToUpper(path.Ext(filename))
	return Loader{
		Filename:   filename,
		Recognised: slices.Contains(FileExtensions[:], ext),
	}
}

// ShortName returns a shortened version of the filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the data. Subsequent calls to Load() do nothing.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file", "":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnknownScheme, scheme)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyImage, ld.ShortName())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashMismatch)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
