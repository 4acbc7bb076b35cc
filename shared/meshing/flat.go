package meshing

// FlatBuilder emite 3 vértices exclusivos por face; nenhum vértice é compartilhado.
type FlatBuilder struct{}

func (FlatBuilder) BuildGeometry(faces []Face, buf *MeshBuffer) {
	for _, f := range faces {
		for k := 0; k < 3; k++ {
			i := buf.AddVertex(f.Points[k], f.UVs[k], up, HeightColor(f.Points[k].Y))
			buf.AddIndex(i)
		}
	}
}

// GenerateNormals repete a normal da face nos seus 3 vértices.
func (FlatBuilder) GenerateNormals(g *GeometryData) {
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := int(g.Indices[i]), int(g.Indices[i+1]), int(g.Indices[i+2])
		n := FaceNormal(g.Vertex(a), g.Vertex(b), g.Vertex(c))
		g.setNormal(a, n)
		g.setNormal(b, n)
		g.setNormal(c, n)
	}
}
