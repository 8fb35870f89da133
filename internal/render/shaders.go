package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// litLocs are the uniform locations of the lit shader, looked up once after load.
type litLocs struct {
	viewPos   int32
	lightPos  int32
	ambient   int32
	diffuse   int32
	specular  int32
	shininess int32
}

// loadLitShader compiles the normal-mapped Blinn-Phong shader and binds the
// ambient-occlusion sampler, which raylib does not look up by default.
func loadLitShader() (rl.Shader, litLocs) {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(sh) {
		return sh, litLocs{}
	}
	sh.UpdateLocation(rl.ShaderLocMapOcclusion, rl.GetShaderLocation(sh, "texture4"))
	sh.UpdateLocation(rl.ShaderLocVectorView, rl.GetShaderLocation(sh, "viewPos"))
	return sh, litLocs{
		viewPos:   rl.GetShaderLocation(sh, "viewPos"),
		lightPos:  rl.GetShaderLocation(sh, "light.position"),
		ambient:   rl.GetShaderLocation(sh, "light.ambient"),
		diffuse:   rl.GetShaderLocation(sh, "light.diffuse"),
		specular:  rl.GetShaderLocation(sh, "light.specular"),
		shininess: rl.GetShaderLocation(sh, "shininess"),
	}
}

// loadLightShader compiles the unlit shader used for the light marker.
func loadLightShader() rl.Shader {
	return rl.LoadShaderFromMemory(lightVS, lightFS)
}

func setVec3(sh rl.Shader, loc int32, v [3]float32) {
	if loc < 0 {
		return
	}
	rl.SetShaderValueV(sh, loc, v[:], rl.ShaderUniformVec3, 1)
}

func setFloat(sh rl.Shader, loc int32, f float32) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(sh, loc, []float32{f}, rl.ShaderUniformFloat)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexTangent;
in vec4 vertexColor;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec4 fragColor;
out mat3 fragTBN;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  vec3 N = normalize(mat3(matNormal) * vertexNormal);
  vec3 T = normalize(mat3(matModel) * vertexTangent.xyz);
  T = normalize(T - dot(T, N) * N);
  vec3 B = cross(N, T) * vertexTangent.w;
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragColor = vertexColor;
  fragTBN = mat3(T, B, N);
  gl_Position = matProjection * matView * worldPos;
}
`
	// texture0 diffuse, texture1 specular, texture2 normal, texture4 ambient occlusion.
	litFS = `#version 330
struct Light {
  vec3 position;
  vec3 ambient;
  vec3 diffuse;
  vec3 specular;
};
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec4 fragColor;
in mat3 fragTBN;
uniform sampler2D texture0;
uniform sampler2D texture1;
uniform sampler2D texture2;
uniform sampler2D texture4;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform Light light;
uniform float shininess;
out vec4 finalColor;
void main() {
  vec4 albedo = texture(texture0, fragTexCoord) * colDiffuse * fragColor;
  vec3 specMap = texture(texture1, fragTexCoord).rgb;
  float ao = texture(texture4, fragTexCoord).r;
  vec3 N = texture(texture2, fragTexCoord).rgb * 2.0 - 1.0;
  N = normalize(fragTBN * N);
  vec3 L = normalize(light.position - fragPosition);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 H = normalize(L + V);
  float NdotL = max(dot(N, L), 0.0);
  float spec = NdotL > 0.0 ? pow(max(dot(N, H), 0.0), shininess) : 0.0;
  vec3 ambient = light.ambient * albedo.rgb * ao;
  vec3 diffuse = light.diffuse * NdotL * albedo.rgb;
  vec3 specular = light.specular * spec * specMap;
  finalColor = vec4(ambient + diffuse + specular, albedo.a);
}
`
	lightVS = `#version 330
in vec3 vertexPosition;
in vec4 vertexColor;
uniform mat4 mvp;
out vec4 fragColor;
void main() {
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	lightFS = `#version 330
in vec4 fragColor;
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
  finalColor = fragColor * colDiffuse;
}
`
)
