// SPDX-FileCopyrightText: 2014-2022 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"bufio"
	"context"
	"database/sql/driver"
	"fmt"
	"io"

	"golang.org/x/text/transform"

	"github.com/sap-thirdparty/hdbproto/driver/hdb"
	"github.com/sap-thirdparty/hdbproto/driver/unicode/cesu8"
)

// DriverVersion holds the version of the driver and is set during go-hdb initialization to driver.DriverVersion value.
var DriverVersion string

// ClientType is the information provided to HDB identifying the driver.
// Previously the driver.DriverName "hdb" was used but we should be more specific in providing a unique client type to HANA backend.
const ClientType = "https://github.com/sap-thirdparty/hdbproto"

const (
	dfvLevel1        = 1
	defaultSessionID = -1
)

// ConnectionCore represents a HDB session.
type ConnectionCore struct {
	cfg *SessionConfig

	sessionID     int64
	serverOptions ConnectOptions
	hdbVersion    *hdb.Version

	pr *protocolReader
	pw *protocolWriter
}

// NewConnectionCore creates a new wire-protocol connection core (connect handshake, authenticate, request/reply roundtrips).
func NewConnectionCore(ctx context.Context, rw *bufio.ReadWriter, cfg *SessionConfig) (*ConnectionCore, error) {
	var sessionVariables map[string]string
	if cfg.SessionVariables != nil {
		sessionVariables = cfg.SessionVariables.LoadMap()
	}
	pw := newProtocolWriter(rw.Writer, cfg.CESU8Encoder, sessionVariables) // write upstream
	if err := pw.writeProlog(); err != nil {
		return nil, err
	}

	pr := newProtocolReader(false, rw.Reader, cfg.CESU8Decoder) // read downstream
	if err := pr.readProlog(); err != nil {
		return nil, err
	}

	s := &ConnectionCore{cfg: cfg, sessionID: defaultSessionID, pr: pr, pw: pw}

	authStepper := newAuth(cfg)
	var err error
	if s.sessionID, s.serverOptions, err = s.authenticate(authStepper); err != nil {
		return nil, err
	}

	if s.sessionID <= 0 {
		return nil, fmt.Errorf("invalid session id %d", s.sessionID)
	}

	s.hdbVersion = hdb.ParseVersion(s.serverOptions.fullVersionString())
	return s, nil
}

// SessionID returns the session id of the hdb connection.
func (s *ConnectionCore) SessionID() int64 { return s.sessionID }

// HDBVersion returns the hdb server version.
func (s *ConnectionCore) HDBVersion() *hdb.Version { return s.hdbVersion }

// DatabaseName returns the database name.
func (s *ConnectionCore) DatabaseName() string {
	return s.serverOptions.plain().asString(int8(CoDatabaseName))
}

func (s *ConnectionCore) defaultClientOptions() ConnectOptions {
	co := ConnectOptions{
		CoDistributionProtocolVersion: optBooleanType(false),
		CoSelectForUpdateSupported:    optBooleanType(false),
		CoSplitBatchCommands:          optBooleanType(true),
		CoDataFormatVersion2:          optIntType(s.cfg.Dfv),
		CoCompleteArrayExecution:      optBooleanType(true),
		CoClientDistributionMode:      cdmOff,
	}
	if s.cfg.Locale != "" {
		co[CoClientLocale] = optStringType(s.cfg.Locale)
	}
	return co
}

func (s *ConnectionCore) authenticate(stepper authStepper) (int64, ConnectOptions, error) {
	var auth partReadWriter
	var err error

	// client context
	clientContext := ClientContext{
		CcoClientVersion:            optStringType(DriverVersion),
		CcoClientType:               optStringType(ClientType),
		CcoClientApplicationProgram: optStringType(s.cfg.ApplicationName),
	}

	if auth, err = stepper.next(); err != nil {
		return 0, nil, err
	}
	if err := s.pw.write(s.sessionID, MtAuthenticate, false, clientContext, auth); err != nil {
		return 0, nil, err
	}

	if auth, err = stepper.next(); err != nil {
		return 0, nil, err
	}
	if err := s.pr.iterateParts(func(ph *PartHeader) {
		if ph.PartKind == PkAuthentication {
			s.pr.read(auth)
		}
	}); err != nil {
		return 0, nil, err
	}

	if auth, err = stepper.next(); err != nil {
		return 0, nil, err
	}
	id := newClientID()
	co := s.defaultClientOptions()
	if err := s.pw.write(s.sessionID, MtConnect, false, auth, id, co); err != nil {
		return 0, nil, err
	}

	if auth, err = stepper.next(); err != nil {
		return 0, nil, err
	}
	if err := s.pr.iterateParts(func(ph *PartHeader) {
		switch ph.PartKind {
		case PkAuthentication:
			s.pr.read(auth)
		case PkConnectOptions:
			s.pr.read(&co)
			// set data format version
			// TODO generalize for sniffer
			s.pr.setDfv(int(co[CoDataFormatVersion2].(optIntType)))
		}
	}); err != nil {
		return 0, nil, err
	}

	return s.pr.sessionID(), co, nil
}

// QueryDirect executes a query without query parameters.
func (s *ConnectionCore) QueryDirect(query string, commit bool) (driver.Rows, error) {
	// allow e.g inserts as query -> handle commit like in ExecDirect
	if err := s.pw.write(s.sessionID, MtExecuteDirect, commit, Command(query)); err != nil {
		return nil, err
	}

	rs := &ResultSet{session: s}
	meta := &ResultMetadata{}
	resSet := &Resultset{}

	if err := s.pr.iterateParts(func(ph *PartHeader) {
		switch ph.PartKind {
		case PkResultMetadata:
			s.pr.read(meta)
			rs.fields = meta.ResultFields
		case PkResultsetID:
			s.pr.read((*ResultsetID)(&rs.rsID))
		case PkResultset:
			resSet.ResultFields = rs.fields
			s.pr.read(resSet)
			rs.fieldValues = resSet.FieldValues
			rs.decodeErrors = resSet.DecodeErrors
			rs.attrs = ph.partAttributes
		}
	}); err != nil {
		return nil, err
	}
	if rs.rsID == 0 { // non select query
		return NoResult, nil
	}
	return rs, nil
}

// ExecDirect executes a sql statement without statement parameters.
func (s *ConnectionCore) ExecDirect(query string, commit bool) (driver.Result, error) {
	reply, err := s.roundtrip(newRequest(MtExecuteDirect, commit, Command(query)), nil)
	if err != nil {
		return nil, err
	}

	var numRow int64
	for _, pv := range reply.Parts {
		if rows, ok := pv.Value.(*RowsAffected); ok {
			numRow = rows.Total()
		}
	}
	if reply.Kind == fcDDL {
		return driver.ResultNoRows, nil
	}
	return driver.RowsAffected(numRow), nil
}

// Prepare prepares a sql statement.
func (s *ConnectionCore) Prepare(query string) (*PrepareResult, error) {
	if err := s.pw.write(s.sessionID, MtPrepare, false, Command(query)); err != nil {
		return nil, err
	}

	pr := &PrepareResult{session: s}
	resMeta := &ResultMetadata{}
	prmMeta := &ParameterMetadata{}

	if err := s.pr.iterateParts(func(ph *PartHeader) {
		switch ph.PartKind {
		case PkStatementID:
			s.pr.read((*StatementID)(&pr.stmtID))
		case PkResultMetadata:
			s.pr.read(resMeta)
			pr.resultFields = resMeta.ResultFields
		case PkParameterMetadata:
			s.pr.read(prmMeta)
			pr.parameterFields = prmMeta.parameterFields
		}
	}); err != nil {
		return nil, err
	}
	pr.fc = s.pr.functionCode()
	return pr, nil
}

// fetchFirstLobChunk reads the first LOB data ckunk.
func (s *ConnectionCore) fetchFirstLobChunk(nvargs []driver.NamedValue) (bool, error) {
	chunkSize := s.cfg.LobChunkSize
	hasNext := false

	for _, arg := range nvargs {
		if descr, ok := arg.Value.(*LobInDescr); ok {
			last, err := descr.fetchNext(chunkSize)
			if !last {
				hasNext = true
			}
			if err != nil {
				return hasNext, err
			}
		}
	}
	return hasNext, nil
}

/*
Exec executes a sql statement.

Bulk insert containing LOBs:
- Precondition:
  .Sending more than one row with partial LOB data.
- Observations:
  .In hdb version 1 and 2 'piecewise' LOB writing does work.
  .Same does not work in case of geo fields which are LOBs en,- decoded as well.
  .In hana version 4 'piecewise' LOB writing seems not to work anymore at all.
- Server implementation (not documented):
  .'piecewise' LOB writing is only suppoerted for the last row of a 'bulk insert'.
- Current implementation:
  One server call in case of
    - 'non bulk' execs or
    - 'bulk' execs without LOBs
  else potential several server calls (split into packages).
  Package invariant:
  - For all packages except the last one, the last row contains 'incomplete' LOB data ('piecewise' writing)
*/
func (s *ConnectionCore) Exec(pr *PrepareResult, nvargs []driver.NamedValue, commit bool) (driver.Result, error) {
	hasLob := func() bool {
		for _, f := range pr.parameterFields {
			if f.tc.isLob() {
				return true
			}
		}
		return false
	}()

	// no split needed: no LOB or only one row
	if !hasLob || len(pr.parameterFields) == len(nvargs) {
		return s.exec(pr, nvargs, hasLob, commit)
	}

	// args need to be potentially splitted (piecewise LOB handling)
	numColumns := len(pr.parameterFields)
	numRows := len(nvargs) / numColumns
	totRowsAffected := int64(0)
	lastFrom := 0

	for i := 0; i < numRows; i++ { // row-by-row

		from := i * numColumns
		to := from + numColumns

		hasNext, err := s.fetchFirstLobChunk(nvargs[from:to])
		if err != nil {
			return nil, err
		}

		/*
			trigger server call (exec) if piecewise lob handling is needed
			or we did reach the last row
		*/
		if hasNext || i == (numRows-1) {
			r, err := s.exec(pr, nvargs[lastFrom:to], true, commit)
			if err != nil {
				return driver.RowsAffected(totRowsAffected), err
			}
			if rowsAffected, err := r.RowsAffected(); err == nil {
				totRowsAffected += rowsAffected
			}
			if err != nil {
				return driver.RowsAffected(totRowsAffected), err
			}
			lastFrom = to
		}
	}
	return driver.RowsAffected(totRowsAffected), nil
}

// exec executes an exec server call.
func (s *ConnectionCore) exec(pr *PrepareResult, nvargs []driver.NamedValue, hasLob, commit bool) (driver.Result, error) {
	InputParameters, err := newInputParameters(pr.parameterFields, nvargs, hasLob)
	if err != nil {
		return nil, err
	}
	if err := s.pw.write(s.sessionID, MtExecute, commit, StatementID(pr.stmtID), InputParameters); err != nil {
		return nil, err
	}

	rows := &RowsAffected{}
	var ids []LocatorID
	lobReply := &WriteLobReply{}
	var rowsAffected int64

	if err := s.pr.iterateParts(func(ph *PartHeader) {
		switch ph.PartKind {
		case PkRowsAffected:
			s.pr.read(rows)
			rowsAffected = rows.Total()
		case PkWriteLobReply:
			s.pr.read(lobReply)
			ids = lobReply.ids
		}
	}); err != nil {
		return nil, err
	}
	fc := s.pr.functionCode()

	if len(ids) != 0 {
		/*
			writeLobParameters:
			- chunkReaders
			- nil (no callResult, exec does not have output parameters)
		*/
		if err := s.encodeLobs(nil, ids, pr.parameterFields, nvargs); err != nil {
			return nil, err
		}
	}

	if fc == fcDDL {
		return driver.ResultNoRows, nil
	}
	return driver.RowsAffected(rowsAffected), nil
}

// QueryCall executes a stored procecure (by Query).
func (s *ConnectionCore) QueryCall(pr *PrepareResult, nvargs []driver.NamedValue) (driver.Rows, error) {
	/*
		only in args
		invariant: #inPrmFields == #args
	*/
	var inPrmFields, outPrmFields []*ParameterField
	hasInLob := false
	for _, f := range pr.parameterFields {
		if f.In() {
			inPrmFields = append(inPrmFields, f)
			if f.tc.isLob() {
				hasInLob = true
			}
		}
		if f.Out() {
			outPrmFields = append(outPrmFields, f)
		}
	}

	if hasInLob {
		if _, err := s.fetchFirstLobChunk(nvargs); err != nil {
			return nil, err
		}
	}
	InputParameters, err := newInputParameters(inPrmFields, nvargs, hasInLob)
	if err != nil {
		return nil, err
	}
	if err := s.pw.write(s.sessionID, MtExecute, false, StatementID(pr.stmtID), InputParameters); err != nil {
		return nil, err
	}

	/*
		call without lob input parameters:
		--> callResult output parameter values are set after read call
		call with lob input parameters:
		--> callResult output parameter values are set after last lob input write
	*/

	cr, ids, _, err := s.readCall(outPrmFields) // ignore numRow
	if err != nil {
		return nil, err
	}

	if len(ids) != 0 {
		/*
			writeLobParameters:
			- chunkReaders
			- cr (callResult output parameters are set after all lob input parameters are written)
		*/
		if err := s.encodeLobs(cr, ids, inPrmFields, nvargs); err != nil {
			return nil, err
		}
	}

	return cr, nil
}

// ExecCall executes a stored procecure (by Exec).
func (s *ConnectionCore) ExecCall(pr *PrepareResult, nvargs []driver.NamedValue) (driver.Result, error) {
	/*
		in,- and output args
		invariant: #prmFields == #args
	*/
	var inPrmFields, outPrmFields []*ParameterField
	var inArgs, outArgs []driver.NamedValue
	hasInLob := false
	for i, f := range pr.parameterFields {
		if f.In() {
			inPrmFields = append(inPrmFields, f)
			inArgs = append(inArgs, nvargs[i])
			if f.tc.isLob() {
				hasInLob = true
			}
		}
		if f.Out() {
			outPrmFields = append(outPrmFields, f)
			outArgs = append(outArgs, nvargs[i])
		}
	}

	// TODO release v1.0.0 - assign output parameters
	if len(outPrmFields) != 0 {
		return nil, fmt.Errorf("stmt.Exec: support of output parameters not implemented yet")
	}

	if hasInLob {
		if _, err := s.fetchFirstLobChunk(inArgs); err != nil {
			return nil, err
		}
	}
	InputParameters, err := newInputParameters(inPrmFields, inArgs, hasInLob)
	if err != nil {
		return nil, err
	}
	if err := s.pw.write(s.sessionID, MtExecute, false, StatementID(pr.stmtID), InputParameters); err != nil {
		return nil, err
	}

	/*
		call without lob input parameters:
		--> callResult output parameter values are set after read call
		call with lob input parameters:
		--> callResult output parameter values are set after last lob input write
	*/

	cr, ids, numRow, err := s.readCall(outPrmFields)
	if err != nil {
		return nil, err
	}

	if len(ids) != 0 {
		/*
			writeLobParameters:
			- chunkReaders
			- cr (callResult output parameters are set after all lob input parameters are written)
		*/
		if err := s.encodeLobs(cr, ids, inPrmFields, inArgs); err != nil {
			return nil, err
		}
	}
	return driver.RowsAffected(numRow), nil
}

func (s *ConnectionCore) readCall(outputFields []*ParameterField) (*CallResult, []LocatorID, int64, error) {
	cr := &CallResult{session: s, outputFields: outputFields}

	var rs *ResultSet
	rows := &RowsAffected{}
	var ids []LocatorID
	outPrms := &OutputParameters{}
	meta := &ResultMetadata{}
	resSet := &Resultset{}
	lobReply := &WriteLobReply{}
	var numRow int64

	if err := s.pr.iterateParts(func(ph *PartHeader) {
		switch ph.PartKind {
		case PkRowsAffected:
			s.pr.read(rows)
			numRow = rows.Total()
		case PkOutputParameters:
			outPrms.outputFields = cr.outputFields
			s.pr.read(outPrms)
			cr.fieldValues = outPrms.fieldValues
			cr.decodeErrors = outPrms.decodeErrors
		case PkResultMetadata:
			/*
				procedure call with table parameters does return metadata for each table
				sequence: metadata, resultsetID, resultset
				but:
				- resultset might not be provided for all tables
				- so, 'additional' query result is detected by new metadata part
			*/
			rs = &ResultSet{session: s}
			cr.qrs = append(cr.qrs, rs)
			s.pr.read(meta)
			rs.fields = meta.ResultFields
		case PkResultset:
			resSet.ResultFields = rs.fields
			s.pr.read(resSet)
			rs.fieldValues = resSet.FieldValues
			rs.decodeErrors = resSet.DecodeErrors
			rs.attrs = ph.partAttributes
		case PkResultsetID:
			s.pr.read((*ResultsetID)(&rs.rsID))
		case PkWriteLobReply:
			s.pr.read(lobReply)
			ids = lobReply.ids
		}
	}); err != nil {
		return nil, nil, 0, err
	}
	return cr, ids, numRow, nil
}

// Query executes a query.
func (s *ConnectionCore) Query(pr *PrepareResult, nvargs []driver.NamedValue, commit bool) (driver.Rows, error) {
	// allow e.g inserts as query -> handle commit like in exec

	hasLob := func() bool {
		for _, f := range pr.parameterFields {
			if f.tc.isLob() {
				return true
			}
		}
		return false
	}()

	if hasLob {
		if _, err := s.fetchFirstLobChunk(nvargs); err != nil {
			return nil, err
		}
	}
	InputParameters, err := newInputParameters(pr.parameterFields, nvargs, hasLob)
	if err != nil {
		return nil, err
	}
	if err := s.pw.write(s.sessionID, MtExecute, commit, StatementID(pr.stmtID), InputParameters); err != nil {
		return nil, err
	}

	rs := &ResultSet{session: s, fields: pr.resultFields}
	resSet := &Resultset{}

	if err := s.pr.iterateParts(func(ph *PartHeader) {
		switch ph.PartKind {
		case PkResultsetID:
			s.pr.read((*ResultsetID)(&rs.rsID))
		case PkResultset:
			resSet.ResultFields = rs.fields
			s.pr.read(resSet)
			rs.fieldValues = resSet.FieldValues
			rs.decodeErrors = resSet.DecodeErrors
			rs.attrs = ph.partAttributes
		}
	}); err != nil {
		return nil, err
	}
	if rs.rsID == 0 { // non select query
		return NoResult, nil
	}
	return rs, nil
}

// fetchNext fetches the next chunk of rows for an open ResultSet.
func (s *ConnectionCore) fetchNext(rs *ResultSet) error {
	if err := s.pw.write(s.sessionID, MtFetchNext, false, ResultsetID(rs.rsID), Fetchsize(s.cfg.FetchSize)); err != nil {
		return err
	}

	resSet := &Resultset{ResultFields: rs.fields, FieldValues: rs.fieldValues} // reuse field values

	return s.pr.iterateParts(func(ph *PartHeader) {
		if ph.PartKind == PkResultset {
			s.pr.read(resSet)
			rs.fieldValues = resSet.FieldValues
			rs.decodeErrors = resSet.DecodeErrors
			rs.attrs = ph.partAttributes
		}
	})
}

// DropStatementID releases the hdb statement handle.
func (s *ConnectionCore) DropStatementID(id uint64) error {
	_, err := s.roundtrip(newRequest(MtDropStatementID, false, StatementID(id)), nil)
	return err
}

// CloseResultsetID releases the hdb resultset handle.
func (s *ConnectionCore) CloseResultsetID(id uint64) error {
	_, err := s.roundtrip(newRequest(MtCloseResultset, false, ResultsetID(id)), nil)
	return err
}

// Commit executes a database commit.
func (s *ConnectionCore) Commit() error {
	reply, err := s.roundtrip(newRequest(MtCommit, false), nil)
	if err != nil {
		return err
	}
	if reply.sessionClosing() {
		return fmt.Errorf("hdb: session closed by server during commit")
	}
	return nil
}

// Rollback executes a database rollback.
func (s *ConnectionCore) Rollback() error {
	reply, err := s.roundtrip(newRequest(MtRollback, false), nil)
	if err != nil {
		return err
	}
	if reply.sessionClosing() {
		return fmt.Errorf("hdb: session closed by server during rollback")
	}
	return nil
}

// Disconnect disconnects the session.
func (s *ConnectionCore) Disconnect() error {
	if err := s.pw.write(s.sessionID, MtDisconnect, false); err != nil {
		return err
	}
	/*
		Do not read server reply as on slow connections the TCP/IP connection is closed (by Server)
		before the reply can be read completely.

		// if err := s.pr.readSkip(); err != nil {
		// 	return err
		// }

	*/
	return nil
}

// DBConnectInfo provided hdb connection information.
func (s *ConnectionCore) DBConnectInfo(databaseName string) (*hdb.DBConnectInfo, error) {
	ci := dbConnectInfo{int8(ciDatabaseName): optStringType(databaseName)}
	if err := s.pw.write(s.sessionID, MtDBConnectInfo, false, ci); err != nil {
		return nil, err
	}

	if err := s.pr.iterateParts(func(ph *PartHeader) {
		switch ph.PartKind {
		case PkDBConnectInfo:
			s.pr.read(&ci)
		}
	}); err != nil {
		return nil, err
	}

	return &hdb.DBConnectInfo{
		DatabaseName: databaseName,
		Host:         plainOptions(ci).asString(int8(ciHost)),
		Port:         plainOptions(ci).asInt(int8(ciPort)),
		IsConnected:  plainOptions(ci).asBool(int8(ciIsConnected)),
	}, nil
}

// decodeLobs decodes (reads from db) output lob or result lob parameters.

// read lob reply
// - seems like readLobreply returns only a result for one lob - even if more then one is requested
// --> read single lobs
func (s *ConnectionCore) decodeLobs(descr *LobOutDescr, wr io.Writer) error {
	var err error

	if descr.IsCharBased {
		wrcl := transform.NewWriter(wr, s.cfg.CESU8Decoder()) // CESU8 transformer
		err = s._decodeLobs(descr, wrcl, func(b []byte) (int64, error) {
			// Caution: hdb counts 4 byte utf-8 encodings (cesu-8 6 bytes) as 2 (3 byte) chars
			numChars := int64(0)
			for len(b) > 0 {
				if !cesu8.FullRune(b) { //
					return 0, fmt.Errorf("lob chunk consists of incomplete CESU-8 runes")
				}
				_, size := cesu8.DecodeRune(b)
				b = b[size:]
				numChars++
				if size == cesu8.CESUMax {
					numChars++
				}
			}
			return numChars, nil
		})
	} else {
		err = s._decodeLobs(descr, wr, func(b []byte) (int64, error) { return int64(len(b)), nil })
	}

	if pw, ok := wr.(*io.PipeWriter); ok { // if the writer is a pipe-end -> close at the end
		if err != nil {
			pw.CloseWithError(err)
		} else {
			pw.Close()
		}
	}
	return err
}

func (s *ConnectionCore) _decodeLobs(descr *LobOutDescr, wr io.Writer, countChars func(b []byte) (int64, error)) error {
	lobChunkSize := int64(s.cfg.LobChunkSize)

	chunkSize := func(numChar, ofs int64) int32 {
		chunkSize := numChar - ofs
		if chunkSize > lobChunkSize {
			return int32(lobChunkSize)
		}
		return int32(chunkSize)
	}

	if _, err := wr.Write(descr.B); err != nil {
		return err
	}

	lobRequest := &ReadLobRequest{}
	lobRequest.id = descr.ID

	lobReply := &ReadLobReply{}

	eof := descr.Opt.isLastData()

	ofs, err := countChars(descr.B)
	if err != nil {
		return err
	}

	for !eof {

		lobRequest.ofs += ofs
		lobRequest.chunkSize = chunkSize(descr.NumChar, ofs)

		if err := s.pw.write(s.sessionID, MtReadLob, false, lobRequest); err != nil {
			return err
		}

		if err := s.pr.iterateParts(func(ph *PartHeader) {
			if ph.PartKind == PkReadLobReply {
				s.pr.read(lobReply)
			}
		}); err != nil {
			return err
		}

		if lobReply.id != lobRequest.id {
			return fmt.Errorf("internal error: invalid lob locator %d - expected %d", lobReply.id, lobRequest.id)
		}

		if _, err := wr.Write(lobReply.b); err != nil {
			return err
		}

		ofs, err = countChars(lobReply.b)
		if err != nil {
			return err
		}
		eof = lobReply.opt.isLastData()
	}
	return nil
}

// encodeLobs encodes (write to db) input lob parameters.
func (s *ConnectionCore) encodeLobs(cr *CallResult, ids []LocatorID, inPrmFields []*ParameterField, nvargs []driver.NamedValue) error {

	chunkSize := s.cfg.LobChunkSize

	descrs := make([]*WriteLobDescr, 0, len(ids))

	numInPrmField := len(inPrmFields)

	j := 0
	for i, arg := range nvargs { // range over args (mass / bulk operation)
		f := inPrmFields[i%numInPrmField]
		if f.tc.isLob() {
			descr, ok := arg.Value.(*LobInDescr)
			if !ok {
				return fmt.Errorf("protocol error: invalid lob parameter %[1]T %[1]v - *LobInDescr expected", arg)
			}
			if j >= len(ids) {
				return fmt.Errorf("protocol error: invalid number of lob parameter ids %d", len(ids))
			}
			descrs = append(descrs, &WriteLobDescr{LobInDescr: descr, id: ids[j]})
			j++
		}
	}

	lobRequest := &WriteLobRequest{}

	for len(descrs) != 0 {

		if len(descrs) != len(ids) {
			return fmt.Errorf("protocol error: invalid number of lob parameter ids %d - expected %d", len(descrs), len(ids))
		}
		for i, descr := range descrs { // check if ids and descrs are in sync
			if descr.id != ids[i] {
				return fmt.Errorf("protocol error: lob parameter id mismatch %d - expected %d", descr.id, ids[i])
			}
		}

		// TODO check total size limit
		for _, descr := range descrs {
			if err := descr.fetchNext(chunkSize); err != nil {
				return err
			}
		}

		lobRequest.descrs = descrs

		if err := s.pw.write(s.sessionID, MtWriteLob, false, lobRequest); err != nil {
			return err
		}

		lobReply := &WriteLobReply{}
		outPrms := &OutputParameters{}

		if err := s.pr.iterateParts(func(ph *PartHeader) {
			switch ph.PartKind {
			case PkOutputParameters:
				outPrms.outputFields = cr.outputFields
				s.pr.read(outPrms)
				cr.fieldValues = outPrms.fieldValues
				cr.decodeErrors = outPrms.decodeErrors
			case PkWriteLobReply:
				s.pr.read(lobReply)
				ids = lobReply.ids
			}
		}); err != nil {
			return err
		}

		// remove done descr
		j := 0
		for _, descr := range descrs {
			if !descr.Opt.isLastData() {
				descrs[j] = descr
				j++
			}
		}
		descrs = descrs[:j]
	}
	return nil
}
