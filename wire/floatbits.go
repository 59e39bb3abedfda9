/*
NAME
  floatbits.go

DESCRIPTION
  Thin wrappers over math.Float{32,64}{from}Bits, named to match the
  wire codec's float32/float64 field accessors.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wire

import "math"

func float32FromBits(v uint32) float32 { return math.Float32frombits(v) }
func float32Bits(v float32) uint32     { return math.Float32bits(v) }
func float64FromBits(v uint64) float64 { return math.Float64frombits(v) }
func float64Bits(v float64) uint64     { return math.Float64bits(v) }
