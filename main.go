/*
 * Copyright (c) 2024, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/astralkit/perihelion/cmd/perihelion"
)

func main() {
	perihelion.Execute()
}
