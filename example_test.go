package packetcodec_test

import (
	"fmt"
	"log"

	packetcodec "github.com/anirudhraja/packetcodec"
	"github.com/anirudhraja/packetcodec/loader"
)

// Example demonstrates loading a YAML schema and decoding a packet from it.
func Example() {
	const schemaText = `
schema:
  name: Telemetry
  byte_order: big
packets:
  - id: 1
    name: Status
    fields:
      - name: temperature
        type: int16
        scale: 0.01
        offset: -40
        unit: C
      - name: status
        type: bitfield
        bits: 8
        flags:
          - bit: 0
            name: engine_1
          - bit: 7
            name: abort
`

	codec, err := packetcodec.Load(schemaText, loader.Auto, nil)
	if err != nil {
		log.Fatal(err)
	}

	packet, err := codec.Decode(1, []byte{0x13, 0x88, 0x81})
	if err != nil {
		log.Fatal(err)
	}

	temp, _ := packet.FieldByName("temperature")
	tempC, _ := temp.Float64()
	fmt.Printf("temperature: %.1f%s\n", tempC, temp.Unit)

	status, _ := packet.FieldByName("status")
	fmt.Printf("engine_1: %v, abort: %v\n", status.Bitfield.Flags["engine_1"], status.Bitfield.Flags["abort"])

	// Output:
	// temperature: 10.0C
	// engine_1: true, abort: true
}
