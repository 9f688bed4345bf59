// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors returned by the Loader type.
const (
	LoadError = "romloader: %v"
)

// Loader is used to specify the ROM to attach to the machine. ROM files are
// raw bytes with no header; the machine loads them verbatim at its fixed
// program origin.
type Loader struct {
	// filename or URL of the ROM
	Filename string

	// SHA1 hash of the loaded data. valid after a successful Load()
	Hash string

	// copy of the loaded data. subsequent calls to Load() are no-ops once
	// the data is in place
	Data []byte
}

// FileExtensions is the list of file extensions that are recognised as
// CHIP-8 ROMs. Recognition is advisory; any file can be attached.
var FileExtensions = [...]string{".ch8", ".c8", ".rom", ".bin"}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	ext := strings.ToLower(path.Ext(filename))

	recognised := false
	for _, e := range FileExtensions {
		if ext == e {
			recognised = true
			break // for loop
		}
	}
	if !recognised && ext != "" {
		logger.Logf("romloader", "unrecognised file extension (%s)", ext)
	}

	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the Loader filename, suitable
// for window titles and the like.
func (ld Loader) ShortName() string {
	sn := path.Base(ld.Filename)
	return strings.TrimSuffix(sn, path.Ext(sn))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM data. Loader filenames with a URL scheme will use that
// method to load the data. Currently supported schemes are HTTP(S) and
// local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		ld.Data, err = loadURL(ld.Filename)
	case "file", "":
		ld.Data, err = os.ReadFile(ld.Filename)
	default:
		err = fmt.Errorf("unsupported url scheme (%s)", scheme)
	}

	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	logger.Logf("romloader", "%s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

func loadURL(address string) ([]byte, error) {
	resp, err := http.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http response: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
