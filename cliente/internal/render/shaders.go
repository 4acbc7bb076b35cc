package render

// Terreno: textura base * cor do vértice (tinta por altura) * luz direcional + ambiente.
const terrainVertexShader = `
#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;

void main() {
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = vertexNormal;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const terrainFragmentShader = `
#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
in vec3 fragNormal;

uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 lightDir;   // Direção para onde a luz aponta
uniform vec3 lightColor;
uniform vec3 ambient;

out vec4 finalColor;

void main() {
    vec4 texelColor = texture(texture0, fragTexCoord);

    float diff = max(dot(normalize(fragNormal), -normalize(lightDir)), 0.0);
    vec3 light = ambient + lightColor * diff;

    // A tinta por altura vive no canal verde; com textura ela modula o brilho
    float tint = fragColor.g;
    vec4 color = texelColor * colDiffuse;
    color.rgb *= tint * light;

    finalColor = vec4(color.rgb, 1.0);
}
`
