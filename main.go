package main

import (
    "log"

    "github.com/hyperledger/fabric-contract-api-go/contractapi"

    "github.com/medledger/chaincode/medical-records/contracts"
)

func main() {
    medicalRecordContract := new(contracts.MedicalRecordContract)
    accessControlContract := new(contracts.AccessControlContract)
    adminContract := new(contracts.AdminContract)

    chaincode, err := contractapi.NewChaincode(
        medicalRecordContract,
        accessControlContract,
        adminContract,
    )
    if err != nil {
        log.Panicf("Error creating medical records chaincode: %v", err)
    }

    if err := chaincode.Start(); err != nil {
        log.Panicf("Error starting medical records chaincode: %v", err)
    }
}
