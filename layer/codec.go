package layer

import (
	"github.com/aeyian/wallpaper/internal/jsonobj"
)

// MarshalJSON writes the manifest form of a layer. Members in Extra are
// appended after the known ones.
func (l Layer) MarshalJSON() ([]byte, error) {
	fields := []jsonobj.Field{
		{Key: "id", Value: l.ID},
		{Key: "type", Value: l.Type()},
		{Key: "name", Value: l.Name},
		{Key: "position", Value: l.Position},
	}
	if l.Size != nil {
		fields = append(fields, jsonobj.Field{Key: "size", Value: *l.Size})
	}
	if sc, ok := l.Content.(SolidColor); ok {
		fields = append(fields, jsonobj.Field{Key: "color", Value: sc.Color})
	}
	fields = append(fields, jsonobj.Field{Key: "visible", Value: l.Visible})
	return jsonobj.Marshal(fields, l.Extra)
}

// UnmarshalJSON reads the manifest form of a layer. Missing members take
// their defaults: visible true, full-canvas size, name "Layer {id}" and
// color "#ffffff" for solid color layers.
func (l *Layer) UnmarshalJSON(data []byte) error {
	m, err := jsonobj.Split(data)
	if err != nil {
		return err
	}

	out := Layer{Visible: true}
	var typ Type

	if _, err := jsonobj.Take(m, "id", &out.ID); err != nil {
		return err
	}
	if _, err := jsonobj.Take(m, "type", &typ); err != nil {
		return err
	}
	if _, err := jsonobj.Take(m, "name", &out.Name); err != nil {
		return err
	}
	if _, err := jsonobj.Take(m, "position", &out.Position); err != nil {
		return err
	}
	var size Size
	ok, err := jsonobj.Take(m, "size", &size)
	if err != nil {
		return err
	}
	if ok {
		out.Size = &size
	}
	if _, err := jsonobj.Take(m, "visible", &out.Visible); err != nil {
		return err
	}

	out.Content = contentFor(typ)
	if typ == TypeSolidColor {
		var color string
		if _, err := jsonobj.Take(m, "color", &color); err != nil {
			return err
		}
		if color != "" {
			out.Content = SolidColor{Color: color}
		}
	}

	if out.Name == "" {
		out.Name = DefaultName(out.ID)
	}
	if len(m) > 0 {
		out.Extra = m
	}

	*l = out
	return nil
}
