// Package project reads the settings an existing Android project already declares.
package project

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ruboto/rubotogen/internal/errors"
)

// ManifestFile is the name of the manifest at the project root
const ManifestFile = "AndroidManifest.xml"

const androidNS = "http://schemas.android.com/apk/res/android"

// Manifest holds the values the generators take from AndroidManifest.xml.
// Zero values mean the manifest does not declare them.
type Manifest struct {
	Path      string
	Package   string
	MinSDK    int
	TargetSDK int
}

type manifestXML struct {
	XMLName xml.Name `xml:"manifest"`
	Package string   `xml:"package,attr"`
	UsesSDK []struct {
		MinSDK    string `xml:"http://schemas.android.com/apk/res/android minSdkVersion,attr"`
		TargetSDK string `xml:"http://schemas.android.com/apk/res/android targetSdkVersion,attr"`
	} `xml:"uses-sdk"`
}

// ReadManifest parses dir/AndroidManifest.xml
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	return ParseManifest(path, data)
}

// FindManifest returns the manifest in dir, or nil when there is none
func FindManifest(dir string) (*Manifest, error) {
	if _, err := os.Stat(filepath.Join(dir, ManifestFile)); os.IsNotExist(err) {
		return nil, nil
	}
	return ReadManifest(dir)
}

// ParseManifest decodes manifest data; path is only used in error messages
func ParseManifest(path string, data []byte) (*Manifest, error) {
	var doc manifestXML
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, errors.WrapConfigurationError(ManifestFile, "parse", err).WithContext("path", path)
	}

	m := &Manifest{Path: path, Package: strings.TrimSpace(doc.Package)}
	for _, sdk := range doc.UsesSDK {
		var err error
		if sdk.MinSDK != "" {
			if m.MinSDK, err = sdkVersion(path, "minSdkVersion", sdk.MinSDK); err != nil {
				return nil, err
			}
		}
		if sdk.TargetSDK != "" {
			if m.TargetSDK, err = sdkVersion(path, "targetSdkVersion", sdk.TargetSDK); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func sdkVersion(path, attribute, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v <= 0 {
		return 0, errors.ConfigurationError(ManifestFile, attribute+" must be a positive integer, got "+strconv.Quote(value)).
			WithContext("path", path).
			WithContext("namespace", androidNS)
	}
	return v, nil
}
