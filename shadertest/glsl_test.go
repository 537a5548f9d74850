package shadertest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		source string
		ok     bool
	}{
		{"valid", "#version 330 core\nvoid main() {\n}\n", true},
		{"void params", "#version 410 core\nvoid main(void) { }", true},
		{"no version", "void main() {}\n", false},
		{"version in comment", "// #version 330\nvoid main() {}\n", false},
		{"no main", "#version 330 core\nvoid helper() {}\n", false},
		{"unclosed brace", "#version 330 core\nvoid main() {\n", false},
		{"stray paren", "#version 330 core\nvoid main() { f()); }\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := check(tt.source)
			if tt.ok {
				assert.Empty(t, log)
			} else {
				assert.NotEmpty(t, log)
			}
		})
	}
}

func TestScan(t *testing.T) {
	d := scan(`#version 330 core
layout (location = 0) in vec3 aPos;
flat in int id;
out vec2 uv;
uniform mat4 model;
uniform float unused[4];
uniform highp float scale;
// uniform float commented;
void main() {
    gl_Position = model * vec4(aPos * scale, 1.0);
    uv = aPos.xy;
}
`)
	assert.Equal(t, []string{"aPos", "id"}, d.inputs)
	assert.Equal(t, []string{"uv"}, d.outputs)
	assert.Equal(t, []string{"model", "scale"}, d.activeUniforms)
}

func TestLinkInterface(t *testing.T) {
	vertex := declarations{outputs: []string{"vColor"}}

	assert.Empty(t, linkInterface(vertex, declarations{inputs: []string{"vColor"}}))
	assert.Contains(t, linkInterface(vertex, declarations{inputs: []string{"vColor", "vUV"}}), "`vUV'")
}
