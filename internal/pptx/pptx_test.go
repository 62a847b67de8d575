package pptx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

const slideTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld><p:spTree><p:sp><p:txBody>%BODY%</p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`

func buildPptx(t *testing.T, slides map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range slides {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		content := strings.Replace(slideTemplate, "%BODY%", body, 1)
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractText(t *testing.T) {
	data := buildPptx(t, map[string]string{
		"ppt/slides/slide1.xml": `<a:p><a:r><a:t>タイトル</a:t></a:r></a:p><a:p><a:r><a:t>本文</a:t><a:t>の続き</a:t></a:r></a:p>`,
		"ppt/slides/slide2.xml": `<a:p><a:r><a:t>第二スライド</a:t></a:r></a:p>`,
	})

	got, err := ExtractText(data)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	want := "【スライド1】\nタイトル\n本文の続き\n\n【スライド2】\n第二スライド"
	if got != want {
		t.Errorf("ExtractText() = %q, want %q", got, want)
	}
}

func TestExtractTextSlideOrder(t *testing.T) {
	// slide10 must sort after slide2 numerically, not lexically.
	data := buildPptx(t, map[string]string{
		"ppt/slides/slide10.xml": `<a:p><a:r><a:t>ten</a:t></a:r></a:p>`,
		"ppt/slides/slide2.xml":  `<a:p><a:r><a:t>two</a:t></a:r></a:p>`,
	})

	got, err := ExtractText(data)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	if strings.Index(got, "two") > strings.Index(got, "ten") {
		t.Errorf("slides out of order: %q", got)
	}
	if !strings.Contains(got, "【スライド10】") {
		t.Errorf("slide numbering lost: %q", got)
	}
}

func TestExtractTextEmptySlidesSkipped(t *testing.T) {
	data := buildPptx(t, map[string]string{
		"ppt/slides/slide1.xml": `<a:p><a:r><a:t>  </a:t></a:r></a:p>`,
		"ppt/slides/slide2.xml": `<a:p><a:r><a:t>内容あり</a:t></a:r></a:p>`,
	})

	got, err := ExtractText(data)
	if err != nil {
		t.Fatalf("ExtractText() error = %v", err)
	}

	if strings.Contains(got, "【スライド1】") {
		t.Errorf("empty slide should be skipped: %q", got)
	}
	if !strings.Contains(got, "【スライド2】\n内容あり") {
		t.Errorf("slide 2 text missing: %q", got)
	}
}

func TestExtractTextNotAZip(t *testing.T) {
	if _, err := ExtractText([]byte("this is not a pptx")); err == nil {
		t.Error("ExtractText() should fail on non-zip input")
	}
}

func TestExtractDecks(t *testing.T) {
	good := buildPptx(t, map[string]string{
		"ppt/slides/slide1.xml": `<a:p><a:r><a:t>資料本文</a:t></a:r></a:p>`,
	})

	text, errs := ExtractDecks([]Deck{
		{Name: "plan.pptx", Data: good},
		{Name: "broken.pptx", Data: []byte("garbage")},
	})

	if !strings.Contains(text, "=== 資料1: plan.pptx ===") || !strings.Contains(text, "資料本文") {
		t.Errorf("combined text = %q", text)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "broken.pptx") {
		t.Errorf("errs = %v, want one entry for broken.pptx", errs)
	}
}
