// Copyright 2026 The Truss-app Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/mdaipayan/Truss-app/cmd"

func main() {
	cmd.Execute()
}
