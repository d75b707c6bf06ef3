package protocol

import (
	"fmt"
	"reflect"

	"github.com/sap-thirdparty/hdbproto/driver/internal/protocol/encoding"
	hdbreflect "github.com/sap-thirdparty/hdbproto/driver/internal/reflect"
)

// Part represents a protocol part.
type Part interface {
	String() string // should support Stringer interface
	kind() PartKind
}

// writablePart represents a protocol part the driver is able to write.
type writablePart interface {
	Part
	numArg() int
	size() int
	encode(enc *encoding.Encoder) error
}

func (*HdbErrors) kind() PartKind           { return PkError }
func (*AuthInitRequest) kind() PartKind     { return PkAuthentication }
func (*AuthInitReply) kind() PartKind       { return PkAuthentication }
func (*AuthFinalRequest) kind() PartKind    { return PkAuthentication }
func (*AuthFinalReply) kind() PartKind      { return PkAuthentication }
func (ClientID) kind() PartKind             { return PkClientID }
func (clientInfo) kind() PartKind           { return PkClientInfo }
func (*TopologyInformation) kind() PartKind { return PkTopologyInformation }
func (Command) kind() PartKind              { return PkCommand }
func (*RowsAffected) kind() PartKind        { return PkRowsAffected }
func (StatementID) kind() PartKind          { return PkStatementID }
func (*ParameterMetadata) kind() PartKind   { return PkParameterMetadata }
func (*InputParameters) kind() PartKind     { return PkParameters }
func (*OutputParameters) kind() PartKind    { return PkOutputParameters }
func (*ResultMetadata) kind() PartKind      { return PkResultMetadata }
func (ResultsetID) kind() PartKind          { return PkResultsetID }
func (*Resultset) kind() PartKind           { return PkResultset }
func (Fetchsize) kind() PartKind            { return PkFetchSize }
func (*ReadLobRequest) kind() PartKind      { return PkReadLobRequest }
func (*ReadLobReply) kind() PartKind        { return PkReadLobReply }
func (*WriteLobRequest) kind() PartKind     { return PkWriteLobRequest }
func (*WriteLobReply) kind() PartKind       { return PkWriteLobReply }
func (*ClientContext) kind() PartKind       { return PkClientContext }
func (*ConnectOptions) kind() PartKind      { return PkConnectOptions }
func (*DBConnectInfo) kind() PartKind       { return PkDBConnectInfo }
func (*statementContext) kind() PartKind    { return PkStatementContext }
func (*transactionFlags) kind() PartKind    { return PkTransactionFlags }

// numArg methods (result == 1).
func (*AuthInitRequest) numArg() int  { return 1 }
func (*AuthFinalRequest) numArg() int { return 1 }
func (ClientID) numArg() int          { return 1 }
func (Command) numArg() int           { return 1 }
func (StatementID) numArg() int       { return 1 }
func (ResultsetID) numArg() int       { return 1 }
func (Fetchsize) numArg() int         { return 1 }
func (*ReadLobRequest) numArg() int   { return 1 }

// size methods (fixed size).
const (
	statementIDSize    = 8
	resultsetIDSize    = 8
	fetchsizeSize      = 4
	readLobRequestSize = 24
)

func (StatementID) size() int    { return statementIDSize }
func (ResultsetID) size() int    { return resultsetIDSize }
func (Fetchsize) size() int      { return fetchsizeSize }
func (ReadLobRequest) size() int { return readLobRequestSize }

// func (lobFlags) size() int       { return tinyintFieldSize }

// check if part types implement WritablePart interface.
var (
	_ writablePart = (*AuthInitRequest)(nil)
	_ writablePart = (*AuthFinalRequest)(nil)
	_ writablePart = (*ClientID)(nil)
	_ writablePart = (*clientInfo)(nil)
	_ writablePart = (*Command)(nil)
	_ writablePart = (*StatementID)(nil)
	_ writablePart = (*InputParameters)(nil)
	_ writablePart = (*ResultsetID)(nil)
	_ writablePart = (*Fetchsize)(nil)
	_ writablePart = (*ReadLobRequest)(nil)
	_ writablePart = (*WriteLobRequest)(nil)
	_ writablePart = (*ClientContext)(nil)
	_ writablePart = (*ConnectOptions)(nil)
	_ writablePart = (*DBConnectInfo)(nil)
)

// check if part types implement the partReader interface.
var (
	_ partReader = (*HdbErrors)(nil)
	_ partReader = (*AuthInitRequest)(nil)
	_ partReader = (*AuthInitReply)(nil)
	_ partReader = (*AuthFinalRequest)(nil)
	_ partReader = (*AuthFinalReply)(nil)
	_ partReader = (*ClientID)(nil)
	_ partReader = (*clientInfo)(nil)
	_ partReader = (*TopologyInformation)(nil)
	_ partReader = (*Command)(nil)
	_ partReader = (*RowsAffected)(nil)
	_ partReader = (*StatementID)(nil)
	_ partReader = (*ParameterMetadata)(nil)
	_ partReader = (*InputParameters)(nil)
	_ partReader = (*OutputParameters)(nil)
	_ partReader = (*ResultMetadata)(nil)
	_ partReader = (*ResultsetID)(nil)
	_ partReader = (*Resultset)(nil)
	_ partReader = (*Fetchsize)(nil)
	_ partReader = (*ReadLobReply)(nil)
	_ partReader = (*WriteLobReply)(nil)
	_ partReader = (*ClientContext)(nil)
	_ partReader = (*ConnectOptions)(nil)
	_ partReader = (*DBConnectInfo)(nil)
	_ partReader = (*statementContext)(nil)
	_ partReader = (*transactionFlags)(nil)
)

var genPartTypeMap = map[PartKind]reflect.Type{
	PkError:               hdbreflect.TypeFor[HdbErrors](),
	PkClientID:            hdbreflect.TypeFor[ClientID](),
	PkClientInfo:          hdbreflect.TypeFor[clientInfo](),
	PkTopologyInformation: hdbreflect.TypeFor[TopologyInformation](),
	PkCommand:             hdbreflect.TypeFor[Command](),
	PkRowsAffected:        hdbreflect.TypeFor[RowsAffected](),
	PkStatementID:         hdbreflect.TypeFor[StatementID](),
	PkResultsetID:         hdbreflect.TypeFor[ResultsetID](),
	PkFetchSize:           hdbreflect.TypeFor[Fetchsize](),
	PkReadLobRequest:      hdbreflect.TypeFor[ReadLobRequest](),
	PkReadLobReply:        hdbreflect.TypeFor[ReadLobReply](),
	PkWriteLobReply:       hdbreflect.TypeFor[WriteLobReply](),
	PkWriteLobRequest:     hdbreflect.TypeFor[WriteLobRequest](),
	PkClientContext:       hdbreflect.TypeFor[ClientContext](),
	PkConnectOptions:      hdbreflect.TypeFor[ConnectOptions](),
	PkTransactionFlags:    hdbreflect.TypeFor[transactionFlags](),
	PkStatementContext:    hdbreflect.TypeFor[statementContext](),
	PkDBConnectInfo:       hdbreflect.TypeFor[DBConnectInfo](),
	/*
	   parts that cannot be used generically as additional parameters are needed

	   PkParameterMetadata
	   PkParameters
	   PkOutputParameters
	   PkResultMetadata
	   PkResultset
	*/
}

// newGenPartReader returns a generic part reader.
func newGenPartReader(kind PartKind) Part {
	if kind == PkAuthentication {
		return nil // cannot instantiate generically
	}
	pt, ok := genPartTypeMap[kind]
	if !ok {
		// whether part cannot be instantiated generically or
		// part is not (yet) known to the driver
		return nil
	}
	// create instance
	part, ok := reflect.New(pt).Interface().(Part)
	if !ok {
		panic(fmt.Sprintf("part kind %s does not implement part reader interface", kind)) // should never happen
	}
	return part
}
