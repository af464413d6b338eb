// Package shaders contains GLSL sources for the ground renderer.
package shaders

// GroundVertexShader transforms terrain vertices and passes through
// normals and tiling UVs.
const GroundVertexShader = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;
out vec2 vSplatCoord;

uniform vec2 uWorldExtent;

void main() {
    vNormal = aNormal;
    vTexCoord = aTexCoord;
    // Splat weights are sampled in normalized world space, one splat pixel
    // per grid cell.
    vSplatCoord = vec2(aPosition.x / uWorldExtent.x, aPosition.z / uWorldExtent.y);
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

// GroundFragmentShader blends four debug layer colors by splat weights and
// applies simple directional lighting.
const GroundFragmentShader = `#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;
in vec2 vSplatCoord;

uniform sampler2D uSplat;
uniform vec3 uLightDir;
uniform vec3 uAmbient;

out vec4 fragColor;

const vec3 layer0 = vec3(0.78, 0.72, 0.50); // sand
const vec3 layer1 = vec3(0.30, 0.55, 0.22); // grass
const vec3 layer2 = vec3(0.50, 0.48, 0.45); // rock
const vec3 layer3 = vec3(0.90, 0.90, 0.93); // snow

void main() {
    vec4 w = texture(uSplat, vSplatCoord);
    vec3 base = layer0 * w.r + layer1 * w.g + layer2 * w.b + layer3 * w.a;

    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, normalize(-uLightDir)), 0.0);
    fragColor = vec4(base * (uAmbient + vec3(diffuse)), 1.0);
}
`
