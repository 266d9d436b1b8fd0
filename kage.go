package sprig

import (
	"fmt"
	"strings"
)

// The sprite shaders receive, per vertex, the premultiplied tint as the
// vertex color and (texture unit, u, v) in the custom attribute. Texture
// coordinates are normalized so that source images of different sizes can
// share one draw.
const multiTextureShaderHeader = `//kage:unit pixels

package main

var Tint vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4, custom vec4) vec4 {
	uv := custom.yz
	var c vec4
`

const multiTextureShaderFooter = `	return c * color * Tint
}
`

// multiTextureShaderSrc generates the sprite fragment program for exactly
// count source images. Unit selection is an if / else if chain on the
// per-vertex unit id; the last unit takes the final else.
func multiTextureShaderSrc(count int) []byte {
	var b strings.Builder
	b.WriteString(multiTextureShaderHeader)
	b.WriteString(textureSelectSrc(count))
	b.WriteString(multiTextureShaderFooter)
	return []byte(b.String())
}

func textureSelectSrc(count int) string {
	if count <= 1 {
		return "\tc = " + sampleSrc(0) + "\n"
	}
	var b strings.Builder
	for i := 0; i < count; i++ {
		switch {
		case i == 0:
			fmt.Fprintf(&b, "\tif custom.x < %d.5 {\n", i)
		case i == count-1:
			b.WriteString("\t} else {\n")
		default:
			fmt.Fprintf(&b, "\t} else if custom.x < %d.5 {\n", i)
		}
		fmt.Fprintf(&b, "\t\tc = %s\n", sampleSrc(i))
	}
	b.WriteString("\t}\n")
	return b.String()
}

func sampleSrc(unit int) string {
	return fmt.Sprintf("imageSrc%[1]dAt(imageSrc%[1]dOrigin() + uv*imageSrc%[1]dSize())", unit)
}

// branchProbeShaderSrc generates a program with n chained conditionals and
// no texture access. Used to find how many branches the compiler accepts.
func branchProbeShaderSrc(n int) []byte {
	var b strings.Builder
	b.WriteString("//kage:unit pixels\n\npackage main\n\n")
	b.WriteString("func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {\n")
	b.WriteString("\ttest := color.r\n\tc := vec4(0)\n")
	for i := 0; i < n; i++ {
		if i == 0 {
			fmt.Fprintf(&b, "\tif test == %d.0 {\n", i)
		} else {
			fmt.Fprintf(&b, "\t} else if test == %d.0 {\n", i)
		}
		b.WriteString("\t\tc += vec4(1.0)\n")
	}
	if n > 0 {
		b.WriteString("\t}\n")
	}
	b.WriteString("\treturn c\n}\n")
	return []byte(b.String())
}
