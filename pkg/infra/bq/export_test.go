package bq

var (
	SanitizeProtoJSON  = sanitizeProtoJSON
	ProtoFieldJSONName = protoFieldJSONName
)
