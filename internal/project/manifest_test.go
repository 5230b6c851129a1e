package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruboto/rubotogen/internal/errors"
)

const sampleManifest = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android"
          package="org.example.app"
          android:versionCode="1"
          android:versionName="1.0">
  <application android:label="@string/app_name">
    <activity android:name="MainActivity"/>
  </application>
  <uses-sdk android:minSdkVersion="10" android:targetSdkVersion="19"/>
</manifest>
`

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(sampleManifest), 0o644))

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "org.example.app", m.Package)
	assert.Equal(t, 10, m.MinSDK)
	assert.Equal(t, 19, m.TargetSDK)
	assert.Equal(t, filepath.Join(dir, ManifestFile), m.Path)
}

func TestParseManifestWithoutUsesSDK(t *testing.T) {
	m, err := ParseManifest("AndroidManifest.xml", []byte(`<manifest package="org.example"/>`))
	require.NoError(t, err)
	assert.Equal(t, "org.example", m.Package)
	assert.Zero(t, m.MinSDK)
	assert.Zero(t, m.TargetSDK)
}

func TestParseManifestInvalidVersion(t *testing.T) {
	data := []byte(`<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="p">
  <uses-sdk android:minSdkVersion="ten"/>
</manifest>`)
	_, err := ParseManifest("AndroidManifest.xml", data)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
}

func TestFindManifestMissing(t *testing.T) {
	m, err := FindManifest(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestReadManifestMissing(t *testing.T) {
	_, err := ReadManifest(t.TempDir())
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
}
