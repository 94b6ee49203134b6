package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// Pack serializes the document into a .docx byte stream: content types,
// package relationships and word/document.xml inside a zip container.
func (d *Document) Pack() ([]byte, error) {
	body, err := d.documentXML()
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(relsXML)},
		{"word/document.xml", body},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("docx: create %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>
`

const relsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

// --- WordprocessingML element model (marshal only) ---

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Blocks []interface{}
	SectPr xmlSectPr `xml:"w:sectPr"`
}

type xmlSectPr struct {
	PgMar xmlPgMar `xml:"w:pgMar"`
}

type xmlPgMar struct {
	Top    int `xml:"w:top,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Right  int `xml:"w:right,attr"`
}

type xmlPara struct {
	XMLName xml.Name `xml:"w:p"`
	Props   *xmlPPr  `xml:"w:pPr,omitempty"`
	Runs    []xmlRun
}

type xmlPPr struct {
	Borders *xmlPBdr    `xml:"w:pBdr,omitempty"`
	Spacing *xmlSpacing `xml:"w:spacing,omitempty"`
	Jc      *xmlVal     `xml:"w:jc,omitempty"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlSpacing struct {
	Before string `xml:"w:before,attr,omitempty"`
	After  string `xml:"w:after,attr,omitempty"`
}

type xmlPBdr struct {
	Top    *xmlBorder `xml:"w:top,omitempty"`
	Bottom *xmlBorder `xml:"w:bottom,omitempty"`
}

type xmlBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    string `xml:"w:sz,attr,omitempty"`
	Color string `xml:"w:color,attr,omitempty"`
}

type xmlRun struct {
	XMLName xml.Name `xml:"w:r"`
	Props   *xmlRPr  `xml:"w:rPr,omitempty"`
	Text    xmlText  `xml:"w:t"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type xmlRPr struct {
	Fonts  *xmlFonts `xml:"w:rFonts,omitempty"`
	Bold   *struct{} `xml:"w:b,omitempty"`
	Italic *struct{} `xml:"w:i,omitempty"`
	Color  *xmlVal   `xml:"w:color,omitempty"`
	Size   *xmlVal   `xml:"w:sz,omitempty"`
}

type xmlFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type xmlTable struct {
	XMLName xml.Name `xml:"w:tbl"`
	Props   xmlTblPr `xml:"w:tblPr"`
	Rows    []xmlRow
}

type xmlTblPr struct {
	Width   xmlTblW        `xml:"w:tblW"`
	Borders *xmlTblBorders `xml:"w:tblBorders,omitempty"`
}

type xmlTblW struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xmlTblBorders struct {
	Top     xmlBorder `xml:"w:top"`
	Left    xmlBorder `xml:"w:left"`
	Bottom  xmlBorder `xml:"w:bottom"`
	Right   xmlBorder `xml:"w:right"`
	InsideH xmlBorder `xml:"w:insideH"`
	InsideV xmlBorder `xml:"w:insideV"`
}

type xmlRow struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []xmlCell
}

type xmlCell struct {
	XMLName xml.Name `xml:"w:tc"`
	Props   *xmlTcPr `xml:"w:tcPr,omitempty"`
	Blocks  []interface{}
}

type xmlTcPr struct {
	Width    *xmlTblW `xml:"w:tcW,omitempty"`
	GridSpan *xmlVal  `xml:"w:gridSpan,omitempty"`
	Shade    *xmlShd  `xml:"w:shd,omitempty"`
}

type xmlShd struct {
	Val  string `xml:"w:val,attr"`
	Fill string `xml:"w:fill,attr"`
}

func (d *Document) documentXML() ([]byte, error) {
	body := xmlBody{
		SectPr: xmlSectPr{PgMar: xmlPgMar{
			Top:    d.margins.Top,
			Bottom: d.margins.Bottom,
			Left:   d.margins.Left,
			Right:  d.margins.Right,
		}},
	}
	for _, blk := range d.blocks {
		switch v := blk.(type) {
		case Paragraph:
			body.Blocks = append(body.Blocks, encodePara(v))
		case Table:
			body.Blocks = append(body.Blocks, encodeTable(v))
		default:
			return nil, fmt.Errorf("docx: unsupported block %T", blk)
		}
	}

	doc := xmlDocument{
		XmlnsW: "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
		Body:   body,
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func encodePara(p Paragraph) xmlPara {
	xp := xmlPara{}

	props := &xmlPPr{}
	hasProps := false
	if p.Align != "" {
		props.Jc = &xmlVal{Val: p.Align}
		hasProps = true
	}
	if p.SpacingBefore > 0 || p.SpacingAfter > 0 {
		sp := &xmlSpacing{}
		if p.SpacingBefore > 0 {
			sp.Before = strconv.Itoa(p.SpacingBefore)
		}
		if p.SpacingAfter > 0 {
			sp.After = strconv.Itoa(p.SpacingAfter)
		}
		props.Spacing = sp
		hasProps = true
	}
	if p.BorderTop != nil || p.BorderBottom != nil {
		props.Borders = &xmlPBdr{
			Top:    encodeBorder(p.BorderTop),
			Bottom: encodeBorder(p.BorderBottom),
		}
		hasProps = true
	}
	if hasProps {
		xp.Props = props
	}

	for _, r := range p.Runs {
		xp.Runs = append(xp.Runs, encodeRun(r))
	}
	return xp
}

func encodeBorder(b *ParagraphBorder) *xmlBorder {
	if b == nil {
		return nil
	}
	return &xmlBorder{Val: b.Style, Sz: strconv.Itoa(b.Size), Color: b.Color}
}

func encodeRun(r Run) xmlRun {
	xr := xmlRun{Text: xmlText{Space: "preserve", Value: r.Text}}
	props := &xmlRPr{}
	hasProps := false
	if r.Font != "" {
		props.Fonts = &xmlFonts{ASCII: r.Font, HAnsi: r.Font}
		hasProps = true
	}
	if r.Bold {
		props.Bold = &struct{}{}
		hasProps = true
	}
	if r.Italic {
		props.Italic = &struct{}{}
		hasProps = true
	}
	if r.Color != "" {
		props.Color = &xmlVal{Val: r.Color}
		hasProps = true
	}
	if r.Size > 0 {
		props.Size = &xmlVal{Val: strconv.Itoa(r.Size)}
		hasProps = true
	}
	if hasProps {
		xr.Props = props
	}
	return xr
}

func encodeTable(t Table) xmlTable {
	xt := xmlTable{
		Props: xmlTblPr{Width: xmlTblW{W: "5000", Type: "pct"}},
	}
	if t.Borderless {
		none := xmlBorder{Val: BorderNone}
		xt.Props.Borders = &xmlTblBorders{Top: none, Left: none, Bottom: none, Right: none, InsideH: none, InsideV: none}
	} else {
		single := xmlBorder{Val: BorderSingle, Sz: "4", Color: "000000"}
		xt.Props.Borders = &xmlTblBorders{Top: single, Left: single, Bottom: single, Right: single, InsideH: single, InsideV: single}
	}
	for _, row := range t.Rows {
		xr := xmlRow{}
		for _, c := range row.Cells {
			xr.Cells = append(xr.Cells, encodeCell(c))
		}
		xt.Rows = append(xt.Rows, xr)
	}
	return xt
}

func encodeCell(c Cell) xmlCell {
	xc := xmlCell{}

	props := &xmlTcPr{}
	hasProps := false
	if c.WidthPct > 0 {
		// OOXML pct units are fiftieths of a percent.
		props.Width = &xmlTblW{W: strconv.Itoa(c.WidthPct * 50), Type: "pct"}
		hasProps = true
	}
	if c.SpanCols > 1 {
		props.GridSpan = &xmlVal{Val: strconv.Itoa(c.SpanCols)}
		hasProps = true
	}
	if c.Shade != "" {
		props.Shade = &xmlShd{Val: "clear", Fill: c.Shade}
		hasProps = true
	}
	if hasProps {
		xc.Props = props
	}

	for _, p := range c.Paragraphs {
		xc.Blocks = append(xc.Blocks, encodePara(p))
	}
	for _, t := range c.Tables {
		xc.Blocks = append(xc.Blocks, encodeTable(t))
		// A cell must not end on a table; Word requires a trailing paragraph.
		xc.Blocks = append(xc.Blocks, xmlPara{})
	}
	if len(xc.Blocks) == 0 {
		xc.Blocks = append(xc.Blocks, xmlPara{})
	}
	return xc
}
