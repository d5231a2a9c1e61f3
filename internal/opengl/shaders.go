package opengl

// Shader pair for the still life. One program draws every part: textured or
// flat-color surfaces, lit by a fixed array of three Phong lights.

// NewSceneProgram compiles and links the still-life shader pair.
func NewSceneProgram() (*Program, error) {
	return NewProgram(sceneVertSrc, sceneFragSrc)
}

const sceneVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
    fragmentPosition = vec3(model * vec4(inPosition, 1.0));
    fragmentNormal = mat3(transpose(inverse(model))) * inNormal;
    fragmentUV = inUV;
    gl_Position = projection * view * vec4(fragmentPosition, 1.0);
}
` + "\x00"

const sceneFragSrc = `
#version 410 core
in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentUV;

out vec4 outFragmentColor;

#define TOTAL_LIGHTS 3

struct LightSource {
    vec3 position;
    vec3 ambientColor;
    vec3 diffuseColor;
    vec3 specularColor;
    float focalStrength;
    float specularIntensity;
};

struct Material {
    vec3 ambientColor;
    float ambientStrength;
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform LightSource lightSources[TOTAL_LIGHTS];
uniform Material material;

void main() {
    vec4 baseColor = objectColor;
    if (bUseTexture) {
        baseColor = texture(objectTexture, fragmentUV * UVscale);
    }

    if (!bUseLighting) {
        outFragmentColor = baseColor;
        return;
    }

    vec3 norm = normalize(fragmentNormal);
    vec3 viewDir = normalize(viewPosition - fragmentPosition);
    vec3 phongResult = vec3(0.0);

    for (int i = 0; i < TOTAL_LIGHTS; i++) {
        vec3 ambient = lightSources[i].ambientColor * material.ambientStrength * material.ambientColor;

        vec3 lightDirection = normalize(lightSources[i].position - fragmentPosition);
        float impact = max(dot(norm, lightDirection), 0.0);
        vec3 diffuse = impact * lightSources[i].diffuseColor * material.diffuseColor;

        vec3 reflectDir = reflect(-lightDirection, norm);
        float exponent = max(material.shininess, lightSources[i].focalStrength);
        float specularComponent = pow(max(dot(viewDir, reflectDir), 0.0), exponent);
        vec3 specular = lightSources[i].specularIntensity * specularComponent *
                        lightSources[i].specularColor * material.specularColor;

        phongResult += ambient + diffuse + specular;
    }

    outFragmentColor = vec4(phongResult * baseColor.rgb, baseColor.a);
}
` + "\x00"
