// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"cogentcore.org/metabrush/brush"
)

// sceneFile is the YAML form of a [Scene].
type sceneFile struct {
	Name    string        `yaml:"name"`
	Camera  Camera        `yaml:"camera"`
	Solids  []*Solid      `yaml:"solids,omitempty"`
	Objects []*objectFile `yaml:"objects,omitempty"`
}

type objectFile struct {
	ID         brush.ObjectID  `yaml:"id"`
	Name       string          `yaml:"name"`
	Resolution float32         `yaml:"resolution"`
	Elements   []brush.Element `yaml:"elements"`
}

// Open reads a scene from the given YAML file.
func Open(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// Read reads a scene in YAML format. Missing camera fields
// keep their defaults and unknown fields are an error.
func Read(r io.Reader) (*Scene, error) {
	var sf sceneFile
	sf.Camera.Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && err != io.EOF {
		return nil, err
	}
	sc := NewScene(sf.Name)
	sc.Camera = sf.Camera
	for _, sd := range sf.Solids {
		if err := sc.AddSolid(sd); err != nil {
			return nil, err
		}
	}
	for _, of := range sf.Objects {
		if sc.Objects.Has(of.ID) || of.ID == 0 {
			return nil, fmt.Errorf("xyz: invalid or duplicate object id %d", of.ID)
		}
		ob := NewObject(of.ID, of.Resolution)
		if of.Name != "" {
			ob.Name = of.Name
		}
		sc.Objects.Add(ob.ID, ob)
		sc.lastObject = max(sc.lastObject, ob.ID)
		for _, el := range of.Elements {
			el.Object = ob.ID
			if err := sc.AddPrimitive(el); err != nil {
				return nil, err
			}
		}
	}
	return sc, nil
}

// Save writes the scene to the given file in YAML format.
func (sc *Scene) Save(filename string) error {
	var b bytes.Buffer
	if err := sc.Write(&b); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// Write writes the scene in YAML format, including all objects.
func (sc *Scene) Write(w io.Writer) error {
	sf := sceneFile{Name: sc.Name, Camera: sc.Camera, Solids: sc.Solids.Values()}
	for _, ob := range sc.Objects.Values() {
		sf.Objects = append(sf.Objects, &objectFile{
			ID:         ob.ID,
			Name:       ob.Name,
			Resolution: ob.Resolution,
			Elements:   ob.Elements.Values(),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&sf); err != nil {
		return err
	}
	return enc.Close()
}
