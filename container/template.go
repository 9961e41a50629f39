package container

import (
	"encoding/hex"
	"fmt"

	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
)

// Connection describes a link between two templates in a higher-level
// driver's graph (e.g. "send Src, then send Dst"). The container package
// never interprets it; it exists so a driver can attach graph structure to
// templates without a separate parallel type.
type Connection struct {
	Src, Dst *Container
	Callback func()
}

// NewTemplate builds the root container: the only node type exposed to a
// higher-level driver. It defaults to the byte-aligned encoder and
// forbids Copy (see Container.Copy).
func NewTemplate(name string, children ...field.Field) (*Container, error) {
	if name == "" {
		name = "Template"
	}
	c := newBase(TemplateKind, name, bitbuf.ByteAligned)
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

// templateGetInfo renders the template, then wraps the rendered-subtree
// snapshot with a "field/" key prefix plus the template's own name,
// current-index string, and rendered bytes in hex.
func (c *Container) templateGetInfo() map[string]any {
	rendered := c.Render()
	inner := c.containerInfo()

	info := make(map[string]any, len(inner)+4)
	for k, v := range inner {
		info[fmt.Sprintf("field/%s", k)] = v
	}
	name, _ := c.Name()
	info["name"] = name
	info["current mutation index"] = fmt.Sprintf("%d/%d", c.CurrentIndex(), c.NumMutations()-1)
	bytes := rendered.Bytes()
	info["value/rendered/hex"] = hex.EncodeToString(bytes)
	info["value/rendered/len"] = len(bytes)
	return info
}
