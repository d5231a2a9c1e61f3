package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"still-life/core"
	"still-life/math"
)

// Program wraps a linked shader program and caches uniform locations by
// name. A name the shader does not declare resolves to -1, which GL ignores
// on set.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a vertex/fragment shader pair. Sources must
// be NUL-terminated.
func NewProgram(vertSrc, fragSrc string) (*Program, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return nil, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	return &Program{
		id:       prog,
		uniforms: make(map[string]int32),
	}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

// Location resolves and caches the uniform location for name.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (p *Program) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(p.Location(name), v)
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.Location(name), value)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.Location(name), value)
}

func (p *Program) SetVec2(name string, value math.Vec2) {
	gl.Uniform2f(p.Location(name), value.X, value.Y)
}

func (p *Program) SetVec3(name string, value math.Vec3) {
	gl.Uniform3f(p.Location(name), value.X, value.Y, value.Z)
}

func (p *Program) SetVec4(name string, x, y, z, w float32) {
	gl.Uniform4f(p.Location(name), x, y, z, w)
}

func (p *Program) SetColor(name string, c core.Color) {
	p.SetVec4(name, c.R, c.G, c.B, c.A)
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
