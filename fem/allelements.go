// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cguevaramorel/ogs/ele/bhe"
)

// enforce loading of all elements
func init() {
	_ = bhe.Element{}
}
