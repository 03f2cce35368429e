package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"

	"github.com/gibiansky/hindent"
)

type styleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	MaxColumns  int    `json:"max_columns"`
	Indent      int    `json:"indent"`
}

func stylesHandler(format string) error {
	infos := make([]styleInfo, 0)
	for _, s := range hindent.Styles() {
		infos = append(infos, styleInfo{
			Name:        s.Name,
			Description: s.Description,
			Author:      s.Author,
			MaxColumns:  s.Config.MaxColumns,
			Indent:      s.Config.IndentSpaces,
		})
	}
	switch strings.ToLower(format) {
	case "json":
		var out []byte
		var err error
		if color.NoColor {
			out, err = json.MarshalIndent(infos, "", "  ")
		} else {
			out, err = prettyjson.Marshal(infos)
		}
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	case "text":
		for _, info := range infos {
			fmt.Printf("%s (by %s)\n", bold(info.Name), info.Author)
			fmt.Printf("    %s\n", info.Description)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
