package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type AvatarCmd struct {
	Path  string `arg:"" optional:"" type:"existingfile" help:"Image file to use as avatar."`
	Clear bool   `help:"Reset the avatar to the default."`
}

func (c *AvatarCmd) Run(ctx *Context) error {
	if c.Clear {
		ctx.Controller.SetAvatar("")
		fmt.Println("Avatar reset to default.")
		return nil
	}
	if c.Path == "" {
		return fmt.Errorf("provide an image file or --clear")
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	mime := mimeForExt(filepath.Ext(c.Path))
	if mime == "" {
		return fmt.Errorf("unsupported image type: %s", filepath.Ext(c.Path))
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	ctx.Controller.SetAvatar(dataURI)
	fmt.Printf("Avatar updated from %s\n", c.Path)
	return nil
}

func mimeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
