package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Views use uuid.UUID and time.Time; responses carry strings.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return formatTime(src.(time.Time)), nil
			},
		},
	},
}

func mustCopy(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		panic(err)
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
