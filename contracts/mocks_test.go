package contracts

import (
    "crypto/x509"
    "errors"
    "fmt"
    "sort"
    "strings"
    "testing"

    "github.com/golang/protobuf/ptypes/timestamp"
    "github.com/hyperledger/fabric-chaincode-go/shim"
    "github.com/hyperledger/fabric-contract-api-go/contractapi"
    "github.com/hyperledger/fabric-protos-go/ledger/queryresult"
    pb "github.com/hyperledger/fabric-protos-go/peer"
    "github.com/stretchr/testify/require"
)

const compositeKeyNamespace = "\x00"

// fakeStub is an in-memory implementation of shim.ChaincodeStubInterface
// backed by a plain map. It covers the subset of the stub the chaincode
// exercises; everything else returns zero values.
type fakeStub struct {
    state       map[string][]byte
    txID        string
    txTimestamp *timestamp.Timestamp
    events      map[string][]byte
}

func newFakeStub() *fakeStub {
    return &fakeStub{
        state:       make(map[string][]byte),
        txID:        "tx-1",
        txTimestamp: &timestamp.Timestamp{Seconds: 1700000000},
        events:      make(map[string][]byte),
    }
}

func (s *fakeStub) GetState(key string) ([]byte, error) {
    return s.state[key], nil
}

func (s *fakeStub) PutState(key string, value []byte) error {
    s.state[key] = value
    return nil
}

func (s *fakeStub) DelState(key string) error {
    delete(s.state, key)
    return nil
}

func (s *fakeStub) GetTxID() string         { return s.txID }
func (s *fakeStub) GetChannelID() string    { return "testchannel" }
func (s *fakeStub) GetArgs() [][]byte       { return nil }
func (s *fakeStub) GetStringArgs() []string { return nil }

func (s *fakeStub) GetFunctionAndParameters() (string, []string) { return "", nil }
func (s *fakeStub) GetArgsSlice() ([]byte, error)                { return nil, nil }

func (s *fakeStub) GetTxTimestamp() (*timestamp.Timestamp, error) {
    if s.txTimestamp == nil {
        return nil, errors.New("tx timestamp not set")
    }
    return s.txTimestamp, nil
}

func (s *fakeStub) SetEvent(name string, payload []byte) error {
    s.events[name] = payload
    return nil
}

func (s *fakeStub) CreateCompositeKey(objectType string, attributes []string) (string, error) {
    ck := compositeKeyNamespace + objectType + string(rune(0))
    for _, att := range attributes {
        ck += att + string(rune(0))
    }
    return ck, nil
}

func (s *fakeStub) SplitCompositeKey(compositeKey string) (string, []string, error) {
    components := strings.Split(strings.TrimPrefix(compositeKey, compositeKeyNamespace), string(rune(0)))
    if len(components) < 2 {
        return "", nil, fmt.Errorf("invalid composite key: %q", compositeKey)
    }
    return components[0], components[1 : len(components)-1], nil
}

func (s *fakeStub) GetStateByPartialCompositeKey(objectType string, keys []string) (shim.StateQueryIteratorInterface, error) {
    prefix, err := s.CreateCompositeKey(objectType, keys)
    if err != nil {
        return nil, err
    }
    return s.rangeIterator(func(key string) bool { return strings.HasPrefix(key, prefix) }), nil
}

func (s *fakeStub) GetStateByRange(startKey, endKey string) (shim.StateQueryIteratorInterface, error) {
    return s.rangeIterator(func(key string) bool {
        return key >= startKey && (endKey == "" || key < endKey)
    }), nil
}

func (s *fakeStub) rangeIterator(match func(string) bool) shim.StateQueryIteratorInterface {
    var kvs []*queryresult.KV
    keys := make([]string, 0, len(s.state))
    for key := range s.state {
        if match(key) {
            keys = append(keys, key)
        }
    }
    sort.Strings(keys)
    for _, key := range keys {
        kvs = append(kvs, &queryresult.KV{Key: key, Value: s.state[key]})
    }
    return &fakeIterator{kvs: kvs}
}

// Unused portions of the stub interface.

func (s *fakeStub) InvokeChaincode(string, [][]byte, string) pb.Response { return pb.Response{} }

func (s *fakeStub) SetStateValidationParameter(string, []byte) error { return nil }

func (s *fakeStub) GetStateValidationParameter(string) ([]byte, error) { return nil, nil }

func (s *fakeStub) GetStateByRangeWithPagination(string, string, int32, string) (shim.StateQueryIteratorInterface, *pb.QueryResponseMetadata, error) {
    return nil, nil, nil
}

func (s *fakeStub) GetStateByPartialCompositeKeyWithPagination(string, []string, int32, string) (shim.StateQueryIteratorInterface, *pb.QueryResponseMetadata, error) {
    return nil, nil, nil
}

func (s *fakeStub) GetQueryResult(string) (shim.StateQueryIteratorInterface, error) {
    return nil, errors.New("rich queries not supported")
}

func (s *fakeStub) GetQueryResultWithPagination(string, int32, string) (shim.StateQueryIteratorInterface, *pb.QueryResponseMetadata, error) {
    return nil, nil, errors.New("rich queries not supported")
}

func (s *fakeStub) GetHistoryForKey(string) (shim.HistoryQueryIteratorInterface, error) {
    return nil, errors.New("history not supported")
}

func (s *fakeStub) GetPrivateData(string, string) ([]byte, error)     { return nil, nil }
func (s *fakeStub) GetPrivateDataHash(string, string) ([]byte, error) { return nil, nil }
func (s *fakeStub) PutPrivateData(string, string, []byte) error       { return nil }
func (s *fakeStub) DelPrivateData(string, string) error               { return nil }
func (s *fakeStub) PurgePrivateData(string, string) error             { return nil }

func (s *fakeStub) SetPrivateDataValidationParameter(string, string, []byte) error { return nil }

func (s *fakeStub) GetPrivateDataValidationParameter(string, string) ([]byte, error) {
    return nil, nil
}

func (s *fakeStub) GetPrivateDataByRange(string, string, string) (shim.StateQueryIteratorInterface, error) {
    return nil, nil
}

func (s *fakeStub) GetPrivateDataByPartialCompositeKey(string, string, []string) (shim.StateQueryIteratorInterface, error) {
    return nil, nil
}

func (s *fakeStub) GetPrivateDataQueryResult(string, string) (shim.StateQueryIteratorInterface, error) {
    return nil, nil
}

func (s *fakeStub) GetCreator() ([]byte, error)          { return nil, nil }
func (s *fakeStub) GetTransient() (map[string][]byte, error) { return nil, nil }
func (s *fakeStub) GetBinding() ([]byte, error)          { return nil, nil }
func (s *fakeStub) GetDecorations() map[string][]byte    { return nil }

func (s *fakeStub) GetSignedProposal() (*pb.SignedProposal, error) { return nil, nil }

type fakeIterator struct {
    kvs []*queryresult.KV
    pos int
}

func (it *fakeIterator) HasNext() bool { return it.pos < len(it.kvs) }

func (it *fakeIterator) Next() (*queryresult.KV, error) {
    if !it.HasNext() {
        return nil, errors.New("no more items")
    }
    kv := it.kvs[it.pos]
    it.pos++
    return kv, nil
}

func (it *fakeIterator) Close() error { return nil }

// fakeIdentity implements cid.ClientIdentity for a fixed principal.
type fakeIdentity struct {
    id string
}

func (f *fakeIdentity) GetID() (string, error)    { return f.id, nil }
func (f *fakeIdentity) GetMSPID() (string, error) { return "HospitalMSP", nil }

func (f *fakeIdentity) GetX509Certificate() (*x509.Certificate, error) { return nil, nil }

func (f *fakeIdentity) GetAttributeValue(string) (string, bool, error) { return "", false, nil }

func (f *fakeIdentity) AssertAttributeValue(string, string) error { return nil }

// testContext returns a transaction context bound to the shared stub with the
// given caller principal.
func testContext(stub *fakeStub, caller string) *contractapi.TransactionContext {
    ctx := &contractapi.TransactionContext{}
    ctx.SetStub(stub)
    ctx.SetClientIdentity(&fakeIdentity{id: caller})
    return ctx
}

// newInitializedStub initializes a fresh ledger with cmo as the chief medical
// officer.
func newInitializedStub(t *testing.T, cmo string) *fakeStub {
    t.Helper()
    stub := newFakeStub()
    admin := new(AdminContract)
    require.NoError(t, admin.InitLedger(testContext(stub, cmo)))
    return stub
}

// createRecord creates a record as the given physician and returns its id.
func createRecord(t *testing.T, stub *fakeStub, physician, category string, dataVolume uint64) uint64 {
    t.Helper()
    mrc := new(MedicalRecordContract)
    id, err := mrc.CreateMedicalRecord(testContext(stub, physician), category, dataVolume)
    require.NoError(t, err)
    return id
}
