package main

import (
	"bytes"
	"testing"

	"github.com/benoitkugler/scenedraw/scene"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestPrinterReport(t *testing.T) {
	report := &scene.Report{
		Region: scene.FullRegion,
		Objects: []scene.ObjectRecord{
			{Index: 0, Class: "BarProgress", Region: scene.NewRegion(scene.Origin, scene.Area{Width: 50, Height: 8}), Color: 1,
				Params: []scene.Param{{Key: "value", Value: 30}, {Key: "maximum", Value: 100}}},
			{Index: 1, Class: "Polygon", Region: scene.NewRegion(scene.Point{X: 1, Y: 1}, scene.Area{Width: 1, Height: 1}), Color: 1},
		},
	}
	var out bytes.Buffer
	p := newPrinter(&out)
	p.report(report)
	p.key("bpp", 16)

	var parsed struct {
		Scene map[string]interface{} `yaml:"scene"`
		Bpp   int                    `yaml:"bpp"`
	}
	assert.NoError(t, yaml.Unmarshal(out.Bytes(), &parsed))
	assert.Equal(t, 16, parsed.Bpp)
	assert.Equal(t, "(0, 0) max", parsed.Scene["region"])

	first := parsed.Scene["[0]"].(map[string]interface{})
	assert.Equal(t, "BarProgress", first["class"])
	assert.Equal(t, 30, first["value"])
	assert.Equal(t, 0, first["renderMicroseconds"])

	second := parsed.Scene["[1]"].(map[string]interface{})
	assert.Equal(t, "Polygon", second["class"])
	assert.Equal(t, "(1, 1) 1x1", second["region"])
}
