package rawtext_test

import (
	"context"
	"os"

	"github.com/dfirtools/rawtext"
)

func ExampleOutputModule_WriteEvent() {
	// Send the reports to stdout
	sink := &rawtext.WriterSink{Writer: os.Stdout}

	// The resolver fills in well known fields absent from raw attributes.
	resolver := rawtext.FallbackFieldResolverFunc(func(_ *rawtext.EventRecord, _ *rawtext.EventData, _ *rawtext.EventDataStream, _ *rawtext.EventTag, fieldName string) string {
		switch fieldName {
		case "display_name":
			return "OS:/var/log/syslog"
		case "filename":
			return "/var/log/syslog"
		case "inode":
			return "16"
		}
		return ""
	})

	module, err := rawtext.NewOutputModule(sink, &rawtext.Config{Resolver: resolver})
	if err != nil {
		// handle error
	}

	timestamp := int64(1704067200000000) // 2024-01-01T00:00:00Z
	record := &rawtext.EventRecord{
		Identifier: rawtext.StoreIdentifier{Store: 1, Index: 12},
		Timestamp:  &timestamp,
	}
	data := &rawtext.EventData{
		DataType: "fs:stat",
		Attributes: []rawtext.Attribute{
			{Name: "size", Value: rawtext.ScalarValue(10)},
			{Name: "name_attr", Value: rawtext.StringValue("x")},
		},
	}
	tag := &rawtext.EventTag{Labels: []string{"a", "b"}}

	if err := module.WriteEvent(context.Background(), record, data, nil, tag); err != nil {
		// handle error
	}

	// Output:
	// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-
	// [Timestamp]:
	//   2024-01-01T00:00:00.000000+00:00
	//
	// [Reserved attributes]:
	//   {display_name} OS:/var/log/syslog
	//   {filename} /var/log/syslog
	//   {inode} 16
	//
	// [Additional attributes]:
	//   {name_attr} x
	//   {size} 10
	//
	// [Tag]:
	//   {labels} ['a', 'b']
}
