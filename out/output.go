// Copyright 2017 The Geco Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling for solutions: encoded field
// files, the diagnostics record and postprocessing plots.
package out

import (
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// GetEncoder returns a new encoder; enctype is "gob" or "json"
func GetEncoder(w goio.Writer, enctype string) utl.Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder; enctype is "gob" or "json"
func GetDecoder(r goio.Reader, enctype string) utl.Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// FieldPath returns the path of an encoded field file
func FieldPath(dirout, fnkey, name, enctype string) string {
	return filepath.Join(dirout, io.Sf("%s-%s.%s", fnkey, name, enctype))
}

// DataPath returns the path of the diagnostics record
func DataPath(dirout, fnkey string) string {
	return filepath.Join(dirout, fnkey+"-data.json")
}

// SaveField writes one nodal field
func SaveField(dirout, fnkey, name, enctype string, v []float64) (err error) {
	f, err := os.Create(FieldPath(dirout, fnkey, name, enctype))
	if err != nil {
		return
	}
	defer f.Close()
	return GetEncoder(f, enctype).Encode(v)
}

// LoadField reads one nodal field written by SaveField
func LoadField(dirout, fnkey, name, enctype string) (v []float64, err error) {
	f, err := os.Open(FieldPath(dirout, fnkey, name, enctype))
	if err != nil {
		return
	}
	defer f.Close()
	err = GetDecoder(f, enctype).Decode(&v)
	return
}

// SaveData writes the diagnostics record as indented JSON
func SaveData(dirout, fnkey string, data interface{}) (err error) {
	b, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return
	}
	return os.WriteFile(DataPath(dirout, fnkey), append(b, '\n'), 0644)
}

// LoadData reads a diagnostics record into a generic map
func LoadData(dirout, fnkey string) (data map[string]interface{}, err error) {
	b, err := os.ReadFile(DataPath(dirout, fnkey))
	if err != nil {
		return
	}
	err = json.Unmarshal(b, &data)
	if err != nil {
		return nil, chk.Err("cannot parse diagnostics record %q:\n%v", DataPath(dirout, fnkey), err)
	}
	return
}
