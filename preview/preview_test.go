package preview

import (
	"bytes"
	"testing"

	"github.com/edatools/aedtkit/aedt"
)

const previewDoc = "$begin 'ProjectPreview'\n" +
	"\tShowGrid=true\n" +
	"\tImage64='aGVsbG8gcHJldmlldw=='\n" +
	"$end 'ProjectPreview'\n"

func TestFromDict(t *testing.T) {
	img, err := FromDict(aedt.Parse([]byte(previewDoc)))
	if err != nil {
		t.Fatalf("FromDict: %v", err)
	}
	if !bytes.Equal(img, []byte("hello preview")) {
		t.Errorf("image = %q, want %q", img, "hello preview")
	}
}

func TestFromDictAlternateKey(t *testing.T) {
	doc := "$begin 'ProjectPreview'\n" +
		"\tThumbnail64='aGVsbG8gcHJldmlldw=='\n" +
		"$end 'ProjectPreview'\n"
	img, err := FromDict(aedt.Parse([]byte(doc)))
	if err != nil {
		t.Fatalf("FromDict: %v", err)
	}
	if string(img) != "hello preview" {
		t.Errorf("image = %q, want %q", img, "hello preview")
	}
}

func TestFromDictMissingBlock(t *testing.T) {
	doc := "$begin 'Other'\nx=1\n$end 'Other'\n"
	if _, err := FromDict(aedt.Parse([]byte(doc))); err == nil {
		t.Fatal("expected error for missing preview block")
	}
}

func TestFromDictMissingImage(t *testing.T) {
	doc := "$begin 'ProjectPreview'\nShowGrid=true\n$end 'ProjectPreview'\n"
	if _, err := FromDict(aedt.Parse([]byte(doc))); err == nil {
		t.Fatal("expected error for missing image field")
	}
}

func TestFromDictBadBase64(t *testing.T) {
	doc := "$begin 'ProjectPreview'\nImage64='not*base64'\n$end 'ProjectPreview'\n"
	if _, err := FromDict(aedt.Parse([]byte(doc))); err == nil {
		t.Fatal("expected error for undecodable payload")
	}
}

func TestFromFile(t *testing.T) {
	img, err := FromFile("testdata/coil.aedt")
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if string(img) != "hello preview" {
		t.Errorf("image = %q, want %q", img, "hello preview")
	}
}
